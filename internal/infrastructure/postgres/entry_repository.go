package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementação de EntryRepository sobre PostgreSQL. As linhas de
// beer control vivem na tabela beer_controls, com cascade no delete.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository constrói o adaptador de entradas. Passar pool ou tx.
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste uma entrada com suas linhas de beer control.
func (r *EntryRepo) Create(e *entity.Entry) error {
	ctx := context.Background()
	query := `
		INSERT INTO entries (id, date, category_id, event_id, event_type, payment_method, value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.CategoryID, nullIfEmpty(e.EventID), e.EventType,
		nullIfEmpty(e.PaymentMethod), e.Value, nullIfEmpty(e.Description),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	for _, bc := range e.BeerControl {
		bcQuery := `
			INSERT INTO beer_controls (id, entry_id, stock_item_id, quantity_taken, quantity_returned)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(ctx, bcQuery,
			bc.ID, bc.EntryID, bc.StockItemID, bc.QuantityTaken, bc.QuantityReturned,
		); err != nil {
			return fmt.Errorf("insert beer control: %w", err)
		}
	}
	return nil
}

// GetByID obtém uma entrada com as linhas de beer control; nil quando não
// existe.
func (r *EntryRepo) GetByID(id string) (*entity.Entry, error) {
	ctx := context.Background()
	query := `
		SELECT id, date, category_id, event_id, event_type, payment_method, value, description, created_at, updated_at
		FROM entries WHERE id = $1`
	var e entity.Entry
	var eventID, paymentMethod, description *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Date, &e.CategoryID, &eventID, &e.EventType, &paymentMethod,
		&e.Value, &description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry by id: %w", err)
	}
	e.EventID = orEmpty(eventID)
	e.PaymentMethod = orEmpty(paymentMethod)
	e.Description = orEmpty(description)

	controls, err := r.listBeerControls(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.BeerControl = controls
	return &e, nil
}

// Update atualiza os campos da entrada. Beer control é imutável.
func (r *EntryRepo) Update(e *entity.Entry) error {
	query := `
		UPDATE entries
		SET date = $2, category_id = $3, event_id = $4, event_type = $5, payment_method = $6, value = $7, description = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Date, e.CategoryID, nullIfEmpty(e.EventID), e.EventType,
		nullIfEmpty(e.PaymentMethod), e.Value, nullIfEmpty(e.Description), e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// ListAll lista entradas (com beer control) da mais recente para a mais
// antiga.
func (r *EntryRepo) ListAll() ([]*entity.Entry, error) {
	ctx := context.Background()
	query := `
		SELECT id, date, category_id, event_id, event_type, payment_method, value, description, created_at, updated_at
		FROM entries ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.Entry
	byID := make(map[string]*entity.Entry)
	for rows.Next() {
		var e entity.Entry
		var eventID, paymentMethod, description *string
		if err := rows.Scan(&e.ID, &e.Date, &e.CategoryID, &eventID, &e.EventType, &paymentMethod,
			&e.Value, &description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.EventID = orEmpty(eventID)
		e.PaymentMethod = orEmpty(paymentMethod)
		e.Description = orEmpty(description)
		list = append(list, &e)
		byID[e.ID] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	bcQuery := `
		SELECT id, entry_id, stock_item_id, quantity_taken, quantity_returned
		FROM beer_controls ORDER BY entry_id`
	bcRows, err := r.q.Query(ctx, bcQuery)
	if err != nil {
		return nil, fmt.Errorf("list beer controls: %w", err)
	}
	defer bcRows.Close()
	for bcRows.Next() {
		var bc entity.BeerControl
		if err := bcRows.Scan(&bc.ID, &bc.EntryID, &bc.StockItemID, &bc.QuantityTaken, &bc.QuantityReturned); err != nil {
			return nil, fmt.Errorf("scan beer control: %w", err)
		}
		if e, ok := byID[bc.EntryID]; ok {
			e.BeerControl = append(e.BeerControl, bc)
		}
	}
	return list, bcRows.Err()
}

// Delete remove uma entrada; as linhas de beer control caem por cascade.
func (r *EntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// SumValueByEvent devolve a receita total por evento.
func (r *EntryRepo) SumValueByEvent() (map[string]decimal.Decimal, error) {
	query := `
		SELECT event_id, SUM(value)
		FROM entries WHERE event_id IS NOT NULL
		GROUP BY event_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sum entries by event: %w", err)
	}
	defer rows.Close()
	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var eventID string
		var total decimal.Decimal
		if err := rows.Scan(&eventID, &total); err != nil {
			return nil, fmt.Errorf("scan event sum: %w", err)
		}
		sums[eventID] = total
	}
	return sums, rows.Err()
}

func (r *EntryRepo) listBeerControls(ctx context.Context, entryID string) ([]entity.BeerControl, error) {
	query := `
		SELECT id, entry_id, stock_item_id, quantity_taken, quantity_returned
		FROM beer_controls WHERE entry_id = $1`
	rows, err := r.q.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list beer controls: %w", err)
	}
	defer rows.Close()
	var controls []entity.BeerControl
	for rows.Next() {
		var bc entity.BeerControl
		if err := rows.Scan(&bc.ID, &bc.EntryID, &bc.StockItemID, &bc.QuantityTaken, &bc.QuantityReturned); err != nil {
			return nil, fmt.Errorf("scan beer control: %w", err)
		}
		controls = append(controls, bc)
	}
	return controls, rows.Err()
}
