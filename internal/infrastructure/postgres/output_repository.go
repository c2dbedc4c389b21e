package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

var _ repository.OutputRepository = (*OutputRepo)(nil)

// OutputRepo implementação de OutputRepository sobre PostgreSQL.
type OutputRepo struct {
	q Querier
}

// NewOutputRepository constrói o adaptador de saídas. Passar pool ou tx.
func NewOutputRepository(q Querier) *OutputRepo {
	return &OutputRepo{q: q}
}

// Create persiste uma saída.
func (r *OutputRepo) Create(o *entity.Output) error {
	query := `
		INSERT INTO outputs (id, date, category_id, event_id, payment_method, value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Date, o.CategoryID, nullIfEmpty(o.EventID), o.PaymentMethod, o.Value,
		nullIfEmpty(o.Description), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert output: %w", err)
	}
	return nil
}

// GetByID obtém uma saída por id; nil quando não existe.
func (r *OutputRepo) GetByID(id string) (*entity.Output, error) {
	query := `
		SELECT id, date, category_id, event_id, payment_method, value, description, created_at, updated_at
		FROM outputs WHERE id = $1`
	var o entity.Output
	var eventID, description *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Date, &o.CategoryID, &eventID, &o.PaymentMethod, &o.Value,
		&description, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get output by id: %w", err)
	}
	o.EventID = orEmpty(eventID)
	o.Description = orEmpty(description)
	return &o, nil
}

// Update atualiza uma saída.
func (r *OutputRepo) Update(o *entity.Output) error {
	query := `
		UPDATE outputs
		SET date = $2, category_id = $3, event_id = $4, payment_method = $5, value = $6, description = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Date, o.CategoryID, nullIfEmpty(o.EventID), o.PaymentMethod, o.Value,
		nullIfEmpty(o.Description), o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update output: %w", err)
	}
	return nil
}

// ListAll lista saídas da mais recente para a mais antiga.
func (r *OutputRepo) ListAll() ([]*entity.Output, error) {
	query := `
		SELECT id, date, category_id, event_id, payment_method, value, description, created_at, updated_at
		FROM outputs ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Output
	for rows.Next() {
		var o entity.Output
		var eventID, description *string
		if err := rows.Scan(&o.ID, &o.Date, &o.CategoryID, &eventID, &o.PaymentMethod, &o.Value,
			&description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		o.EventID = orEmpty(eventID)
		o.Description = orEmpty(description)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete remove uma saída por id.
func (r *OutputRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM outputs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete output: %w", err)
	}
	return nil
}
