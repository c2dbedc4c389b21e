package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// EventUseCase casos de uso de eventos. A receita total de cada evento é
// derivada das entradas no momento da leitura, nunca armazenada.
type EventUseCase struct {
	repo      repository.EventRepository
	entryRepo repository.EntryRepository
}

// NewEventUseCase constrói o caso de uso.
func NewEventUseCase(repo repository.EventRepository, entryRepo repository.EntryRepository) *EventUseCase {
	return &EventUseCase{repo: repo, entryRepo: entryRepo}
}

// Create cria um evento.
func (uc *EventUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.EventTypeClosed && in.Type != entity.EventTypeSingle {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	event := &entity.Event{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Date:         date,
		Type:         in.Type,
		Observations: in.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return uc.toEventResponse(event, decimal.Zero), nil
}

// Update atualiza um evento.
func (uc *EventUseCase) Update(id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		event.Name = *in.Name
	}
	if in.Date != nil {
		d, err := parseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		event.Date = d
	}
	if in.Type != nil {
		if *in.Type != entity.EventTypeClosed && *in.Type != entity.EventTypeSingle {
			return nil, domain.ErrInvalidInput
		}
		event.Type = *in.Type
	}
	if in.Observations != nil {
		event.Observations = *in.Observations
	}
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	revenue, err := uc.revenueOf(event.ID)
	if err != nil {
		return nil, err
	}
	return uc.toEventResponse(event, revenue), nil
}

// GetByID obtém um evento com a receita total derivada.
func (uc *EventUseCase) GetByID(id string) (*dto.EventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	revenue, err := uc.revenueOf(event.ID)
	if err != nil {
		return nil, err
	}
	return uc.toEventResponse(event, revenue), nil
}

// List lista eventos, cada um com sua receita total derivada das entradas.
func (uc *EventUseCase) List() ([]*dto.EventResponse, error) {
	events, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	revenues, err := uc.entryRepo.SumValueByEvent()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, uc.toEventResponse(event, revenues[event.ID]))
	}
	return out, nil
}

// Delete remove um evento. Entradas e saídas atribuídas a ele ficam órfãs
// do evento mas preservam seus valores.
func (uc *EventUseCase) Delete(id string) error {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *EventUseCase) revenueOf(eventID string) (decimal.Decimal, error) {
	revenues, err := uc.entryRepo.SumValueByEvent()
	if err != nil {
		return decimal.Zero, err
	}
	return revenues[eventID], nil
}

func (uc *EventUseCase) toEventResponse(e *entity.Event, revenue decimal.Decimal) *dto.EventResponse {
	return &dto.EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Date:         filter.ISODate(e.Date),
		Type:         e.Type,
		Observations: e.Observations,
		TotalRevenue: revenue,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
