package repository

import "github.com/seu-usuario/choperia-api/internal/domain/entity"

// StockRepository define o porto de persistência para lotes de estoque (DIP).
// GetByID e ListAll devolvem os lotes com o log de movimentos carregado.
type StockRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate obtém o lote bloqueando a linha (SELECT FOR UPDATE);
	// usar apenas dentro de uma transação.
	GetForUpdate(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	ListAll() ([]*entity.StockItem, error)
	Delete(id string) error
}
