package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementação de EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository constrói o adaptador de eventos. Passar pool ou tx.
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste um evento.
func (r *EventRepo) Create(e *entity.Event) error {
	query := `
		INSERT INTO events (id, name, date, type, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Date, e.Type, nullIfEmpty(e.Observations), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtém um evento por id; nil quando não existe.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `
		SELECT id, name, date, type, observations, created_at, updated_at
		FROM events WHERE id = $1`
	var e entity.Event
	var observations *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Date, &e.Type, &observations, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	e.Observations = orEmpty(observations)
	return &e, nil
}

// Update atualiza um evento.
func (r *EventRepo) Update(e *entity.Event) error {
	query := `
		UPDATE events SET name = $2, date = $3, type = $4, observations = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Date, e.Type, nullIfEmpty(e.Observations), e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// ListAll lista eventos do mais recente para o mais antigo.
func (r *EventRepo) ListAll() ([]*entity.Event, error) {
	query := `
		SELECT id, name, date, type, observations, created_at, updated_at
		FROM events ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		var observations *string
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Type, &observations, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Observations = orEmpty(observations)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove um evento por id. Entradas e saídas atribuídas ficam com
// event_id nulo (ON DELETE SET NULL).
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
