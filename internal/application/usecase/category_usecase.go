// Package usecase contém os casos de uso financeiros: categorias, eventos,
// entradas (receitas) e saídas (despesas).
package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorias de entradas e saídas.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria uma categoria ativa. Nome + tipo são únicos; duplicata
// devolve ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.CategoryTypeEntry && in.Type != entity.CategoryTypeOutput {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name, in.Type)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cat := &entity.Category{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Type:              in.Type,
		Active:            true,
		Color:             in.Color,
		AllowsSingleEvent: in.AllowsSingleEvent,
		Description:       in.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Update atualiza campos descritivos. O tipo de uma categoria é imutável.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		if *in.Name != cat.Name {
			existing, err := uc.repo.GetByName(*in.Name, cat.Type)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		cat.Name = *in.Name
	}
	if in.Color != nil {
		cat.Color = *in.Color
	}
	if in.AllowsSingleEvent != nil {
		cat.AllowsSingleEvent = *in.AllowsSingleEvent
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// ToggleStatus inverte o estado ativo/inativo da categoria. Categorias
// inativas ficam fora dos formulários mas continuam visíveis no histórico.
func (uc *CategoryUseCase) ToggleStatus(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	cat.Active = !cat.Active
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// GetByID obtém uma categoria.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(cat), nil
}

// List lista categorias, opcionalmente restritas por tipo (ENTRY | OUTPUT)
// e por estado ativo.
func (uc *CategoryUseCase) List(categoryType string, onlyActive bool) ([]*dto.CategoryResponse, error) {
	cats, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		if categoryType != "" && cat.Type != categoryType {
			continue
		}
		if onlyActive && !cat.Active {
			continue
		}
		out = append(out, toCategoryResponse(cat))
	}
	return out, nil
}

// Delete remove uma categoria.
func (uc *CategoryUseCase) Delete(id string) error {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:                c.ID,
		Name:              c.Name,
		Type:              c.Type,
		Active:            c.Active,
		Color:             c.Color,
		AllowsSingleEvent: c.AllowsSingleEvent,
		Description:       c.Description,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
