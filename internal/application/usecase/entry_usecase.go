package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
	stockdomain "github.com/seu-usuario/choperia-api/internal/domain/stock"
)

// EntryUseCase casos de uso de entradas (receitas). A criação com beer
// control roda dentro do EntryTxRunner: a entrada e os consumos nos lotes
// referenciados fazem commit ou rollback juntos.
type EntryUseCase struct {
	repo         repository.EntryRepository
	categoryRepo repository.CategoryRepository
	eventRepo    repository.EventRepository
	txRunner     EntryTxRunner
}

// NewEntryUseCase constrói o caso de uso.
func NewEntryUseCase(
	repo repository.EntryRepository,
	categoryRepo repository.CategoryRepository,
	eventRepo repository.EventRepository,
	txRunner EntryTxRunner,
) *EntryUseCase {
	return &EntryUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		eventRepo:    eventRepo,
		txRunner:     txRunner,
	}
}

// Create cria uma entrada. Valida valor positivo, categoria ENTRY ativa,
// forma de pagamento obrigatória em evento fechado e devolvido <= retirado
// em cada linha de beer control. Depois, na transação, bloqueia cada lote
// referenciado, aplica o consumo e persiste a entrada; insuficiência em
// qualquer lote desfaz tudo.
func (uc *EntryUseCase) Create(ctx context.Context, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.EventType != entity.EventTypeClosed && in.EventType != entity.EventTypeSingle {
		return nil, domain.ErrInvalidInput
	}
	if in.EventType == entity.EventTypeClosed && in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod != "" && !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.Type != entity.CategoryTypeEntry || !cat.Active {
		return nil, domain.ErrInvalidInput
	}
	var eventName string
	if in.EventID != "" {
		event, err := uc.eventRepo.GetByID(in.EventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, domain.ErrInvalidInput
		}
		eventName = event.Name
	}
	for _, bc := range in.BeerControl {
		if bc.QuantityReturned.GreaterThan(bc.QuantityTaken) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	entry := &entity.Entry{
		ID:            uuid.New().String(),
		Date:          date,
		CategoryID:    in.CategoryID,
		EventID:       in.EventID,
		EventType:     in.EventType,
		PaymentMethod: in.PaymentMethod,
		Value:         in.Value,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, bc := range in.BeerControl {
		entry.BeerControl = append(entry.BeerControl, entity.BeerControl{
			ID:               uuid.New().String(),
			EntryID:          entry.ID,
			StockItemID:      bc.StockItemID,
			QuantityTaken:    bc.QuantityTaken,
			QuantityReturned: bc.QuantityReturned,
		})
	}

	err = uc.txRunner.RunEntry(ctx, func(
		entryRepo repository.EntryRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		for _, bc := range entry.BeerControl {
			lot, err := stockRepo.GetForUpdate(bc.StockItemID)
			if err != nil {
				return err
			}
			if lot == nil {
				return domain.ErrInvalidInput
			}
			movement, err := stockdomain.ConsumeFromEntry(lot, bc.QuantityTaken, bc.QuantityReturned, now)
			if err != nil {
				return err
			}
			if movement != nil {
				if err := movRepo.Create(movement); err != nil {
					return err
				}
				if err := stockRepo.Update(lot); err != nil {
					return err
				}
			}
		}
		return entryRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return uc.toEntryResponse(entry, cat.Name, eventName), nil
}

// Update atualiza campos descritivos de uma entrada. Beer control não é
// reprocessado; estoque só é consumido na criação.
func (uc *EntryUseCase) Update(id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		d, err := parseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entry.Date = d
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.Type != entity.CategoryTypeEntry {
			return nil, domain.ErrInvalidInput
		}
		entry.CategoryID = *in.CategoryID
	}
	if in.EventID != nil {
		if *in.EventID != "" {
			event, err := uc.eventRepo.GetByID(*in.EventID)
			if err != nil {
				return nil, err
			}
			if event == nil {
				return nil, domain.ErrInvalidInput
			}
		}
		entry.EventID = *in.EventID
	}
	if in.EventType != nil {
		if *in.EventType != entity.EventTypeClosed && *in.EventType != entity.EventTypeSingle {
			return nil, domain.ErrInvalidInput
		}
		entry.EventType = *in.EventType
	}
	if in.PaymentMethod != nil {
		if *in.PaymentMethod != "" && !validPaymentMethod(*in.PaymentMethod) {
			return nil, domain.ErrInvalidInput
		}
		entry.PaymentMethod = *in.PaymentMethod
	}
	if in.Value != nil {
		if !in.Value.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		entry.Value = *in.Value
	}
	if in.Description != nil {
		entry.Description = *in.Description
	}
	if entry.EventType == entity.EventTypeClosed && entry.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	entry.UpdatedAt = time.Now()
	if err := uc.repo.Update(entry); err != nil {
		return nil, err
	}
	return uc.toEntryResponse(entry, uc.categoryName(entry.CategoryID), uc.eventName(entry.EventID)), nil
}

// GetByID obtém uma entrada com as linhas de beer control.
func (uc *EntryUseCase) GetByID(id string) (*dto.EntryResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toEntryResponse(entry, uc.categoryName(entry.CategoryID), uc.eventName(entry.EventID)), nil
}

// List lista entradas aplicando o conjunto de filtros em memória. O filtro
// de evento é busca livre sobre o nome resolvido.
func (uc *EntryUseCase) List(f filter.EntryFilter) ([]*dto.EntryResponse, error) {
	entries, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	catNames, err := uc.categoryNames()
	if err != nil {
		return nil, err
	}
	eventNames, err := uc.eventNames()
	if err != nil {
		return nil, err
	}
	lookup := func(eventID string) string { return eventNames[eventID] }
	out := make([]*dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		if !f.Match(e, lookup) {
			continue
		}
		out = append(out, uc.toEntryResponse(e, catNames[e.CategoryID], eventNames[e.EventID]))
	}
	return out, nil
}

// Delete remove uma entrada e suas linhas de beer control. O consumo já
// aplicado nos lotes não é revertido.
func (uc *EntryUseCase) Delete(id string) error {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *EntryUseCase) categoryName(id string) string {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil || cat == nil {
		return ""
	}
	return cat.Name
}

func (uc *EntryUseCase) eventName(id string) string {
	if id == "" {
		return ""
	}
	event, err := uc.eventRepo.GetByID(id)
	if err != nil || event == nil {
		return ""
	}
	return event.Name
}

func (uc *EntryUseCase) categoryNames() (map[string]string, error) {
	cats, err := uc.categoryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, cat := range cats {
		names[cat.ID] = cat.Name
	}
	return names, nil
}

func (uc *EntryUseCase) eventNames() (map[string]string, error) {
	events, err := uc.eventRepo.ListAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(events))
	for _, event := range events {
		names[event.ID] = event.Name
	}
	return names, nil
}

func (uc *EntryUseCase) toEntryResponse(e *entity.Entry, categoryName, eventName string) *dto.EntryResponse {
	var beerControl []dto.BeerControlResponse
	for _, bc := range e.BeerControl {
		beerControl = append(beerControl, dto.BeerControlResponse{
			StockItemID:      bc.StockItemID,
			QuantityTaken:    bc.QuantityTaken,
			QuantityReturned: bc.QuantityReturned,
			Consumed:         bc.Consumed(),
		})
	}
	return &dto.EntryResponse{
		ID:            e.ID,
		Date:          filter.ISODate(e.Date),
		CategoryID:    e.CategoryID,
		CategoryName:  categoryName,
		EventID:       e.EventID,
		EventName:     eventName,
		EventType:     e.EventType,
		PaymentMethod: e.PaymentMethod,
		Value:         e.Value,
		Description:   e.Description,
		BeerControl:   beerControl,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
