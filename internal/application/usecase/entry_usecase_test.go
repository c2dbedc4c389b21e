package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// Repositórios em memória para os testes de caso de uso.

type memEntryRepo struct {
	entries map[string]*entity.Entry
}

func newMemEntryRepo() *memEntryRepo {
	return &memEntryRepo{entries: make(map[string]*entity.Entry)}
}

func (r *memEntryRepo) Create(e *entity.Entry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *memEntryRepo) GetByID(id string) (*entity.Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEntryRepo) Update(e *entity.Entry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *memEntryRepo) ListAll() ([]*entity.Entry, error) {
	out := make([]*entity.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memEntryRepo) Delete(id string) error {
	delete(r.entries, id)
	return nil
}

func (r *memEntryRepo) SumValueByEvent() (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, e := range r.entries {
		if e.EventID == "" {
			continue
		}
		sums[e.EventID] = sums[e.EventID].Add(e.Value)
	}
	return sums, nil
}

type memCategoryRepo struct {
	cats map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{cats: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetByName(name, categoryType string) (*entity.Category, error) {
	for _, c := range r.cats {
		if c.Name == name && c.Type == categoryType {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.cats[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) ListAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.cats))
	for _, c := range r.cats {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	delete(r.cats, id)
	return nil
}

type memEventRepo struct {
	events map[string]*entity.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*entity.Event)}
}

func (r *memEventRepo) Create(e *entity.Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) GetByID(id string) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) Update(e *entity.Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *memEventRepo) ListAll() ([]*entity.Event, error) {
	out := make([]*entity.Event, 0, len(r.events))
	for _, e := range r.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memEventRepo) Delete(id string) error {
	delete(r.events, id)
	return nil
}

type memStockRepo struct {
	lots map[string]*entity.StockItem
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{lots: make(map[string]*entity.StockItem)}
}

func (r *memStockRepo) Create(s *entity.StockItem) error {
	cp := *s
	r.lots[s.ID] = &cp
	return nil
}

func (r *memStockRepo) GetByID(id string) (*entity.StockItem, error) {
	s, ok := r.lots[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *memStockRepo) Update(s *entity.StockItem) error {
	cp := *s
	r.lots[s.ID] = &cp
	return nil
}

func (r *memStockRepo) ListAll() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.lots))
	for _, s := range r.lots {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memStockRepo) Delete(id string) error {
	delete(r.lots, id)
	return nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByStockItem(stockItemID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.StockItemID == stockItemID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTxRunner simula a transação: snapshot dos stores e restauração em erro.
type memTxRunner struct {
	entryRepo *memEntryRepo
	stockRepo *memStockRepo
	movRepo   *memMovementRepo
}

func (t *memTxRunner) RunEntry(_ context.Context, fn func(
	entryRepo repository.EntryRepository,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	entriesBak := make(map[string]*entity.Entry, len(t.entryRepo.entries))
	for k, v := range t.entryRepo.entries {
		cp := *v
		entriesBak[k] = &cp
	}
	lotsBak := make(map[string]*entity.StockItem, len(t.stockRepo.lots))
	for k, v := range t.stockRepo.lots {
		cp := *v
		lotsBak[k] = &cp
	}
	movsBak := append([]*entity.StockMovement(nil), t.movRepo.movements...)

	if err := fn(t.entryRepo, t.stockRepo, t.movRepo); err != nil {
		t.entryRepo.entries = entriesBak
		t.stockRepo.lots = lotsBak
		t.movRepo.movements = movsBak
		return err
	}
	return nil
}

type entryFixture struct {
	uc        *EntryUseCase
	entryRepo *memEntryRepo
	stockRepo *memStockRepo
	movRepo   *memMovementRepo
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()
	entryRepo := newMemEntryRepo()
	catRepo := newMemCategoryRepo()
	eventRepo := newMemEventRepo()
	stockRepo := newMemStockRepo()
	movRepo := &memMovementRepo{}

	now := time.Now()
	require.NoError(t, catRepo.Create(&entity.Category{
		ID: "cat-vendas", Name: "Vendas de Chopp", Type: entity.CategoryTypeEntry,
		Active: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, catRepo.Create(&entity.Category{
		ID: "cat-inativa", Name: "Antiga", Type: entity.CategoryTypeEntry,
		Active: false, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, eventRepo.Create(&entity.Event{
		ID: "ev-1", Name: "Casamento Silva", Date: now,
		Type: entity.EventTypeClosed, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, stockRepo.Create(&entity.StockItem{
		ID: "lote-1", ProductName: "Chopp Pilsen", Category: entity.StockCategoryPilsen,
		EntryDate: now, ExpiryDate: now.AddDate(0, 2, 0),
		UnitLiters: decimal.NewFromInt(50), UnitCount: 10,
		UnitPrice:             decimal.NewFromInt(350),
		InitialQuantityLiters: decimal.NewFromInt(500),
		AvailableQuantityLiters: decimal.NewFromInt(500),
		Status:    entity.StockStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))

	txRunner := &memTxRunner{entryRepo: entryRepo, stockRepo: stockRepo, movRepo: movRepo}
	return &entryFixture{
		uc:        NewEntryUseCase(entryRepo, catRepo, eventRepo, txRunner),
		entryRepo: entryRepo,
		stockRepo: stockRepo,
		movRepo:   movRepo,
	}
}

func TestEntryCreate_ComBeerControlConsomeLote(t *testing.T) {
	fx := newEntryFixture(t)

	resp, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-vendas",
		EventID:       "ev-1",
		EventType:     entity.EventTypeClosed,
		PaymentMethod: entity.PaymentPix,
		Value:         decimal.NewFromInt(3500),
		BeerControl: []dto.BeerControlRequest{
			{StockItemID: "lote-1", QuantityTaken: decimal.NewFromInt(100), QuantityReturned: decimal.NewFromInt(20)},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.BeerControl, 1)
	assert.True(t, resp.BeerControl[0].Consumed.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "Vendas de Chopp", resp.CategoryName)
	assert.Equal(t, "Casamento Silva", resp.EventName)

	lot, err := fx.stockRepo.GetByID("lote-1")
	require.NoError(t, err)
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(420)))
	assert.Len(t, fx.movRepo.movements, 1)
	assert.Equal(t, entity.ExitReasonEvent, fx.movRepo.movements[0].Reason)
}

func TestEntryCreate_EstoqueInsuficienteDesfazTudo(t *testing.T) {
	fx := newEntryFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-vendas",
		EventType:     entity.EventTypeSingle,
		PaymentMethod: entity.PaymentCash,
		Value:         decimal.NewFromInt(500),
		BeerControl: []dto.BeerControlRequest{
			{StockItemID: "lote-1", QuantityTaken: decimal.NewFromInt(600)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// rollback: nada persistido, lote intacto
	entries, _ := fx.entryRepo.ListAll()
	assert.Empty(t, entries)
	assert.Empty(t, fx.movRepo.movements)
	lot, _ := fx.stockRepo.GetByID("lote-1")
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(500)))
}

func TestEntryCreate_EventoFechadoExigeFormaDePagamento(t *testing.T) {
	fx := newEntryFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:       "2024-07-12",
		CategoryID: "cat-vendas",
		EventType:  entity.EventTypeClosed,
		Value:      decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEntryCreate_CategoriaInativaRejeitada(t *testing.T) {
	fx := newEntryFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-inativa",
		EventType:     entity.EventTypeSingle,
		PaymentMethod: entity.PaymentCash,
		Value:         decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEntryCreate_DevolvidoMaiorQueRetiradoRejeitado(t *testing.T) {
	fx := newEntryFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-vendas",
		EventType:     entity.EventTypeSingle,
		PaymentMethod: entity.PaymentCash,
		Value:         decimal.NewFromInt(100),
		BeerControl: []dto.BeerControlRequest{
			{StockItemID: "lote-1", QuantityTaken: decimal.NewFromInt(10), QuantityReturned: decimal.NewFromInt(20)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEntryCreate_ValorNaoPositivoRejeitado(t *testing.T) {
	fx := newEntryFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-vendas",
		EventType:     entity.EventTypeSingle,
		PaymentMethod: entity.PaymentCash,
		Value:         decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEntryUpdate_NaoReprocessaBeerControl(t *testing.T) {
	fx := newEntryFixture(t)

	created, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-vendas",
		EventType:     entity.EventTypeSingle,
		PaymentMethod: entity.PaymentPix,
		Value:         decimal.NewFromInt(200),
		BeerControl: []dto.BeerControlRequest{
			{StockItemID: "lote-1", QuantityTaken: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	newValue := decimal.NewFromInt(250)
	_, err = fx.uc.Update(created.ID, dto.UpdateEntryRequest{Value: &newValue})
	require.NoError(t, err)

	// consumo aplicado só na criação
	lot, _ := fx.stockRepo.GetByID("lote-1")
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(450)))
	assert.Len(t, fx.movRepo.movements, 1)
}

func TestEntryList_FiltraPorNomeDeEventoResolvido(t *testing.T) {
	fx := newEntryFixture(t)

	_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-12",
		CategoryID:    "cat-vendas",
		EventID:       "ev-1",
		EventType:     entity.EventTypeClosed,
		PaymentMethod: entity.PaymentPix,
		Value:         decimal.NewFromInt(3500),
	})
	require.NoError(t, err)
	_, err = fx.uc.Create(context.Background(), dto.CreateEntryRequest{
		Date:          "2024-07-15",
		CategoryID:    "cat-vendas",
		EventType:     entity.EventTypeSingle,
		PaymentMethod: entity.PaymentCash,
		Value:         decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	// busca livre case-insensitive sobre o nome do evento
	got, err := fx.uc.List(filter.EntryFilter{Event: "silva"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Casamento Silva", got[0].EventName)

	// intervalo de datas inclusivo
	got, err = fx.uc.List(filter.EntryFilter{StartDate: "2024-07-13", EndDate: "2024-07-15"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-07-15", got[0].Date)
}

func TestEventList_ReceitaTotalDerivadaDasEntradas(t *testing.T) {
	fx := newEntryFixture(t)
	eventRepo := newMemEventRepo()
	now := time.Now()
	require.NoError(t, eventRepo.Create(&entity.Event{
		ID: "ev-1", Name: "Casamento Silva", Date: now,
		Type: entity.EventTypeClosed, CreatedAt: now, UpdatedAt: now,
	}))

	for _, v := range []int64{1500, 2000} {
		_, err := fx.uc.Create(context.Background(), dto.CreateEntryRequest{
			Date:          "2024-07-12",
			CategoryID:    "cat-vendas",
			EventID:       "ev-1",
			EventType:     entity.EventTypeClosed,
			PaymentMethod: entity.PaymentPix,
			Value:         decimal.NewFromInt(v),
		})
		require.NoError(t, err)
	}

	eventUC := NewEventUseCase(eventRepo, fx.entryRepo)
	events, err := eventUC.List()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].TotalRevenue.Equal(decimal.NewFromInt(3500)))
}
