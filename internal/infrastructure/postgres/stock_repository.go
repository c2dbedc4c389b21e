package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (usável com
// pool ou tx). Leituras carregam também o log de movimentos do lote.
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de estoque. Passar pool ou tx.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, product_name, category, entry_date, expiry_date,
	unit_liters, unit_count, unit_price, initial_quantity_liters,
	available_quantity_liters, status, closure_date, observations,
	created_at, updated_at`

// Create persiste um lote novo.
func (r *StockRepo) Create(s *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, product_name, category, entry_date, expiry_date,
			unit_liters, unit_count, unit_price, initial_quantity_liters,
			available_quantity_liters, status, closure_date, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductName, s.Category, s.EntryDate, s.ExpiryDate,
		s.UnitLiters, s.UnitCount, s.UnitPrice, s.InitialQuantityLiters,
		s.AvailableQuantityLiters, s.Status, s.ClosureDate, nullIfEmpty(s.Observations),
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtém um lote com movimentos; nil quando não existe.
func (r *StockRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_items WHERE id = $1`
	return r.getOne(id, query)
}

// GetForUpdate obtém um lote bloqueando a linha (SELECT FOR UPDATE). Só faz
// sentido dentro de uma transação.
func (r *StockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.getOne(id, query)
}

// Update persiste o estado do lote (quantidade disponível, status,
// encerramento e metadados).
func (r *StockRepo) Update(s *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET product_name = $2, category = $3, entry_date = $4, expiry_date = $5,
			unit_price = $6, available_quantity_liters = $7, status = $8,
			closure_date = $9, observations = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductName, s.Category, s.EntryDate, s.ExpiryDate,
		s.UnitPrice, s.AvailableQuantityLiters, s.Status,
		s.ClosureDate, nullIfEmpty(s.Observations), s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// ListAll lista lotes (com movimentos) do mais recente para o mais antigo.
func (r *StockRepo) ListAll() ([]*entity.StockItem, error) {
	ctx := context.Background()
	query := `SELECT ` + stockColumns + ` FROM stock_items ORDER BY entry_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockItem
	byID := make(map[string]*entity.StockItem)
	for rows.Next() {
		s, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	movQuery := `
		SELECT id, stock_item_id, date, quantity, reason
		FROM stock_movements ORDER BY date, created_at`
	movRows, err := r.q.Query(ctx, movQuery)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer movRows.Close()
	for movRows.Next() {
		var m entity.StockMovement
		if err := movRows.Scan(&m.ID, &m.StockItemID, &m.Date, &m.Quantity, &m.Reason); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if s, ok := byID[m.StockItemID]; ok {
			s.Movements = append(s.Movements, m)
		}
	}
	return list, movRows.Err()
}

// Delete remove um lote; os movimentos caem por cascade.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

func (r *StockRepo) getOne(id, query string) (*entity.StockItem, error) {
	ctx := context.Background()
	s, err := scanStockItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	movQuery := `
		SELECT id, stock_item_id, date, quantity, reason
		FROM stock_movements WHERE stock_item_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(ctx, movQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StockItemID, &m.Date, &m.Quantity, &m.Reason); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		s.Movements = append(s.Movements, m)
	}
	return s, rows.Err()
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	var observations *string
	err := row.Scan(
		&s.ID, &s.ProductName, &s.Category, &s.EntryDate, &s.ExpiryDate,
		&s.UnitLiters, &s.UnitCount, &s.UnitPrice, &s.InitialQuantityLiters,
		&s.AvailableQuantityLiters, &s.Status, &s.ClosureDate, &observations,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan stock item: %w", err)
	}
	s.Observations = orEmpty(observations)
	return &s, nil
}
