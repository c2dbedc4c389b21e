package repository

import "github.com/seu-usuario/choperia-api/internal/domain/entity"

// OutputRepository define o porto de persistência para Output (DIP).
type OutputRepository interface {
	Create(output *entity.Output) error
	GetByID(id string) (*entity.Output, error)
	Update(output *entity.Output) error
	ListAll() ([]*entity.Output, error)
	Delete(id string) error
}
