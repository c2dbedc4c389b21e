package repository

import "github.com/seu-usuario/choperia-api/internal/domain/entity"

// StockMovementRepository define o porto de persistência para o log de
// movimentos de estoque (append-only).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByStockItem(stockItemID string) ([]*entity.StockMovement, error)
}
