package postgres

import (
	"context"
	"fmt"

	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação de StockMovementRepository sobre
// PostgreSQL. O log é append-only; não há update nem delete direto.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador de movimentos. Passar
// pool ou tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra um movimento de saída no log do lote.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, stock_item_id, date, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.StockItemID, m.Date, m.Quantity, m.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByStockItem lista os movimentos de um lote em ordem cronológica.
func (r *StockMovementRepo) ListByStockItem(stockItemID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, stock_item_id, date, quantity, reason
		FROM stock_movements WHERE stock_item_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, stockItemID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StockItemID, &m.Date, &m.Quantity, &m.Reason); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
