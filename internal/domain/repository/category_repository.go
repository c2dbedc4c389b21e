package repository

import "github.com/seu-usuario/choperia-api/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name, categoryType string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListAll() ([]*entity.Category, error)
	Delete(id string) error
}
