package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação de CategoryRepository sobre PostgreSQL
// (usável com pool ou tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador de categorias. Passar pool ou tx.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma categoria. Nome + tipo são únicos.
func (r *CategoryRepo) Create(c *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, type, active, color, allows_single_event, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Type, c.Active, nullIfEmpty(c.Color), c.AllowsSingleEvent,
		nullIfEmpty(c.Description), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por id; nil quando não existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, type, active, color, allows_single_event, description, created_at, updated_at
		FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName obtém uma categoria por nome e tipo; nil quando não existe.
func (r *CategoryRepo) GetByName(name, categoryType string) (*entity.Category, error) {
	query := `
		SELECT id, name, type, active, color, allows_single_event, description, created_at, updated_at
		FROM categories WHERE name = $1 AND type = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, categoryType))
}

// Update atualiza uma categoria.
func (r *CategoryRepo) Update(c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, active = $3, color = $4, allows_single_event = $5, description = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Active, nullIfEmpty(c.Color), c.AllowsSingleEvent,
		nullIfEmpty(c.Description), c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ListAll lista todas as categorias por nome.
func (r *CategoryRepo) ListAll() ([]*entity.Category, error) {
	query := `
		SELECT id, name, type, active, color, allows_single_event, description, created_at, updated_at
		FROM categories ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete remove uma categoria por id.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) scanOne(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var color, description *string
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Active, &color, &c.AllowsSingleEvent,
		&description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	c.Color = orEmpty(color)
	c.Description = orEmpty(description)
	return &c, nil
}

func (r *CategoryRepo) scanRow(rows pgx.Rows) (*entity.Category, error) {
	var c entity.Category
	var color, description *string
	if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Active, &color, &c.AllowsSingleEvent,
		&description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	c.Color = orEmpty(color)
	c.Description = orEmpty(description)
	return &c, nil
}
