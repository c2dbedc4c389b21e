package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// OutputUseCase casos de uso de saídas (despesas).
type OutputUseCase struct {
	repo         repository.OutputRepository
	categoryRepo repository.CategoryRepository
	eventRepo    repository.EventRepository
}

// NewOutputUseCase constrói o caso de uso.
func NewOutputUseCase(
	repo repository.OutputRepository,
	categoryRepo repository.CategoryRepository,
	eventRepo repository.EventRepository,
) *OutputUseCase {
	return &OutputUseCase{repo: repo, categoryRepo: categoryRepo, eventRepo: eventRepo}
}

// Create cria uma saída. A categoria precisa existir, ser do tipo OUTPUT e
// estar ativa; o evento, quando informado, precisa existir.
func (uc *OutputUseCase) Create(in dto.CreateOutputRequest) (*dto.OutputResponse, error) {
	if !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethod(in.PaymentMethod) {
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
	if cat == nil || cat.Type != entity.CategoryTypeOutput || !cat.Active {
		return nil, domain.ErrInvalidInput
	}
	if in.EventID != "" {
		event, err := uc.eventRepo.GetByID(in.EventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	output := &entity.Output{
		ID:            uuid.New().String(),
		Date:          date,
		CategoryID:    in.CategoryID,
		EventID:       in.EventID,
		PaymentMethod: in.PaymentMethod,
		Value:         in.Value,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(output); err != nil {
		return nil, err
	}
	return uc.toOutputResponse(output, cat.Name), nil
}

// Update atualiza uma saída. Campos nil não mudam.
func (uc *OutputUseCase) Update(id string, in dto.UpdateOutputRequest) (*dto.OutputResponse, error) {
	output, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if output == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		d, err := parseDate(*in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		output.Date = d
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.Type != entity.CategoryTypeOutput {
			return nil, domain.ErrInvalidInput
		}
		output.CategoryID = *in.CategoryID
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
		output.EventID = *in.EventID
	}
	if in.PaymentMethod != nil {
		if !validPaymentMethod(*in.PaymentMethod) {
			return nil, domain.ErrInvalidInput
		}
		output.PaymentMethod = *in.PaymentMethod
	}
	if in.Value != nil {
		if !in.Value.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		output.Value = *in.Value
	}
	if in.Description != nil {
		output.Description = *in.Description
	}
	output.UpdatedAt = time.Now()
	if err := uc.repo.Update(output); err != nil {
		return nil, err
	}
	return uc.toOutputResponse(output, uc.categoryName(output.CategoryID)), nil
}

// GetByID obtém uma saída.
func (uc *OutputUseCase) GetByID(id string) (*dto.OutputResponse, error) {
	output, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if output == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toOutputResponse(output, uc.categoryName(output.CategoryID)), nil
}

// List lista saídas aplicando o conjunto de filtros em memória.
func (uc *OutputUseCase) List(f filter.OutputFilter) ([]*dto.OutputResponse, error) {
	outputs, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	names, err := uc.categoryNames()
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(outputs, f.Match)
	out := make([]*dto.OutputResponse, 0, len(filtered))
	for _, o := range filtered {
		out = append(out, uc.toOutputResponse(o, names[o.CategoryID]))
	}
	return out, nil
}

// Delete remove uma saída.
func (uc *OutputUseCase) Delete(id string) error {
	output, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if output == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *OutputUseCase) categoryName(id string) string {
	cat, err := uc.categoryRepo.GetByID(id)
	if err != nil || cat == nil {
		return ""
	}
	return cat.Name
}

func (uc *OutputUseCase) categoryNames() (map[string]string, error) {
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

func (uc *OutputUseCase) toOutputResponse(o *entity.Output, categoryName string) *dto.OutputResponse {
	return &dto.OutputResponse{
		ID:            o.ID,
		Date:          filter.ISODate(o.Date),
		CategoryID:    o.CategoryID,
		CategoryName:  categoryName,
		EventID:       o.EventID,
		PaymentMethod: o.PaymentMethod,
		Value:         o.Value,
		Description:   o.Description,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentCash, entity.PaymentPix, entity.PaymentCreditCard, entity.PaymentDebitCard:
		return true
	}
	return false
}
