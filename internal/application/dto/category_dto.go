package dto

import "time"

// CreateCategoryRequest corpo de POST /api/categories.
type CreateCategoryRequest struct {
	Name              string `json:"name"`
	Type              string `json:"type"` // ENTRY | OUTPUT
	Color             string `json:"color"`
	AllowsSingleEvent bool   `json:"allows_single_event"`
	Description       string `json:"description"`
}

// UpdateCategoryRequest corpo de PUT /api/categories/:id. Campos nil não mudam.
type UpdateCategoryRequest struct {
	Name              *string `json:"name"`
	Color             *string `json:"color"`
	AllowsSingleEvent *bool   `json:"allows_single_event"`
	Description       *string `json:"description"`
}

// CategoryResponse representação de uma categoria.
type CategoryResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Active            bool      `json:"active"`
	Color             string    `json:"color,omitempty"`
	AllowsSingleEvent bool      `json:"allows_single_event"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
