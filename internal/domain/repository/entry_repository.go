package repository

import (
	"github.com/shopspring/decimal"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
)

// EntryRepository define o porto de persistência para Entry (DIP).
// Create persiste também as linhas de beer control da entrada; Update toca
// apenas os campos da própria entrada (as linhas são imutáveis).
type EntryRepository interface {
	Create(entry *entity.Entry) error
	GetByID(id string) (*entity.Entry, error)
	Update(entry *entity.Entry) error
	ListAll() ([]*entity.Entry, error)
	Delete(id string) error

	// SumValueByEvent devolve a receita total por evento (id do evento ->
	// soma dos valores das entradas atribuídas a ele).
	SumValueByEvent() (map[string]decimal.Decimal, error)
}
