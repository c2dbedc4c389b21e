package filter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testEntries() []*entity.Entry {
	return []*entity.Entry{
		{ID: "1", Date: day(2024, 7, 20), CategoryID: "cat-vendas", EventID: "ev-1", EventType: entity.EventTypeClosed, PaymentMethod: entity.PaymentPix, Value: decimal.NewFromInt(1500)},
		{ID: "2", Date: day(2024, 7, 18), CategoryID: "cat-vendas", EventID: "", EventType: entity.EventTypeSingle, PaymentMethod: entity.PaymentCash, Value: decimal.NewFromInt(3500)},
		{ID: "3", Date: day(2024, 6, 30), CategoryID: "cat-outros", EventID: "ev-2", EventType: entity.EventTypeClosed, PaymentMethod: entity.PaymentPix, Value: decimal.NewFromInt(800)},
	}
}

func eventNames(id string) string {
	switch id {
	case "ev-1":
		return "Casamento Silva"
	case "ev-2":
		return "Festival de Inverno"
	}
	return ""
}

// Filtro com todos os campos vazios casa qualquer registro (filtro identidade).
func TestEntryFilter_VazioCasaTudo(t *testing.T) {
	entries := testEntries()
	var f filter.EntryFilter

	got := filter.Apply(entries, func(e *entity.Entry) bool { return f.Match(e, eventNames) })
	assert.Len(t, got, len(entries))
}

func TestEntryFilter_IntervaloDeDatasInclusivo(t *testing.T) {
	entries := testEntries()
	f := filter.EntryFilter{StartDate: "2024-07-18", EndDate: "2024-07-20"}

	got := filter.Apply(entries, func(e *entity.Entry) bool { return f.Match(e, eventNames) })
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.GreaterOrEqual(t, filter.ISODate(e.Date), "2024-07-18")
		assert.LessOrEqual(t, filter.ISODate(e.Date), "2024-07-20")
	}
}

func TestEntryFilter_EventoSubstringCaseInsensitive(t *testing.T) {
	entries := testEntries()
	f := filter.EntryFilter{Event: "casamento"}

	got := filter.Apply(entries, func(e *entity.Entry) bool { return f.Match(e, eventNames) })
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestEntryFilter_CombinacaoAND(t *testing.T) {
	entries := testEntries()
	f := filter.EntryFilter{EventType: entity.EventTypeClosed, PaymentMethod: entity.PaymentPix, StartDate: "2024-07-01"}

	got := filter.Apply(entries, func(e *entity.Entry) bool { return f.Match(e, eventNames) })
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestEntryFilter_CategoriaExata(t *testing.T) {
	entries := testEntries()
	f := filter.EntryFilter{CategoryID: "cat-outros"}

	got := filter.Apply(entries, func(e *entity.Entry) bool { return f.Match(e, eventNames) })
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestOutputFilter(t *testing.T) {
	outputs := []*entity.Output{
		{ID: "1", Date: day(2024, 7, 12), CategoryID: "cat-insumos", PaymentMethod: entity.PaymentPix, Value: decimal.NewFromInt(800)},
		{ID: "2", Date: day(2024, 7, 25), CategoryID: "cat-aluguel", PaymentMethod: entity.PaymentCreditCard, Value: decimal.NewFromInt(2000)},
	}

	var empty filter.OutputFilter
	assert.Len(t, filter.Apply(outputs, empty.Match), 2)

	f := filter.OutputFilter{PaymentMethod: entity.PaymentCreditCard}
	got := filter.Apply(outputs, f.Match)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	f = filter.OutputFilter{EndDate: "2024-07-12"}
	got = filter.Apply(outputs, f.Match)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestStockFilter(t *testing.T) {
	items := []*entity.StockItem{
		{ID: "1", ProductName: "Barril Chopp Pilsen", Category: entity.StockCategoryPilsen, Status: entity.StockStatusActive, ExpiryDate: day(2024, 9, 30)},
		{ID: "2", ProductName: "Barril Chopp IPA", Category: entity.StockCategoryIPA, Status: entity.StockStatusClosed, ExpiryDate: day(2024, 8, 20)},
	}

	f := filter.StockFilter{ProductName: "pilsen"}
	got := filter.Apply(items, f.Match)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	f = filter.StockFilter{Status: entity.StockStatusClosed}
	got = filter.Apply(items, f.Match)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// Vencimento até a data dada, inclusivo.
	f = filter.StockFilter{ExpiryDate: "2024-08-20"}
	got = filter.Apply(items, f.Match)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}
