package repository

import "github.com/seu-usuario/choperia-api/internal/domain/entity"

// EventRepository define o porto de persistência para Event (DIP).
type EventRepository interface {
	Create(event *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	Update(event *entity.Event) error
	ListAll() ([]*entity.Event, error)
	Delete(id string) error
}
