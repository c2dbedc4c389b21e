// Package filter implementa a filtragem por predicados independentes
// combinados com AND. Campo de filtro vazio sempre casa; datas comparam
// lexicograficamente no formato ISO (inclusivo nas duas pontas); busca
// livre usa substring case-insensitive; o resto é igualdade exata.
package filter

import (
	"strings"
	"time"

	"github.com/seu-usuario/choperia-api/internal/domain/entity"
)

// ISODate formata uma data no formato de comparação yyyy-mm-dd.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Apply devolve os itens que satisfazem todos os predicados.
func Apply[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, p := range preds {
			if !p(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// matchExact igualdade exata; filtro vazio casa sempre.
func matchExact(filter, value string) bool {
	return filter == "" || filter == value
}

// matchContains substring case-insensitive; filtro vazio casa sempre.
func matchContains(filter, value string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// matchFrom data do registro >= filtro (inclusivo); filtro vazio casa sempre.
func matchFrom(filter, isoDate string) bool {
	return filter == "" || isoDate >= filter
}

// matchTo data do registro <= filtro (inclusivo); filtro vazio casa sempre.
func matchTo(filter, isoDate string) bool {
	return filter == "" || isoDate <= filter
}

// EntryFilter conjunto de filtros para entradas. Event é busca livre sobre
// o nome resolvido do evento (não sobre o id).
type EntryFilter struct {
	StartDate     string
	EndDate       string
	CategoryID    string
	Event         string
	EventType     string
	PaymentMethod string
}

// Match aplica o filtro a uma entrada. eventName recebe o id do evento e
// devolve o nome de exibição (vazio se não houver evento).
func (f EntryFilter) Match(e *entity.Entry, eventName func(string) string) bool {
	date := ISODate(e.Date)
	return matchFrom(f.StartDate, date) &&
		matchTo(f.EndDate, date) &&
		matchExact(f.CategoryID, e.CategoryID) &&
		matchContains(f.Event, eventName(e.EventID)) &&
		matchExact(f.EventType, e.EventType) &&
		matchExact(f.PaymentMethod, e.PaymentMethod)
}

// OutputFilter conjunto de filtros para saídas.
type OutputFilter struct {
	StartDate     string
	EndDate       string
	CategoryID    string
	PaymentMethod string
	EventID       string
}

// Match aplica o filtro a uma saída.
func (f OutputFilter) Match(o *entity.Output) bool {
	date := ISODate(o.Date)
	return matchFrom(f.StartDate, date) &&
		matchTo(f.EndDate, date) &&
		matchExact(f.CategoryID, o.CategoryID) &&
		matchExact(f.PaymentMethod, o.PaymentMethod) &&
		matchExact(f.EventID, o.EventID)
}

// StockFilter conjunto de filtros para lotes de estoque. ExpiryDate casa
// lotes que vencem até a data dada (inclusivo).
type StockFilter struct {
	ProductName string
	Category    string
	Status      string
	ExpiryDate  string
}

// Match aplica o filtro a um lote.
func (f StockFilter) Match(s *entity.StockItem) bool {
	return matchContains(f.ProductName, s.ProductName) &&
		matchExact(f.Category, s.Category) &&
		matchExact(f.Status, s.Status) &&
		matchTo(f.ExpiryDate, ISODate(s.ExpiryDate))
}
