package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEventRequest corpo de POST /api/events. Date no formato yyyy-mm-dd.
type CreateEventRequest struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Type         string `json:"type"` // fechado | avulso
	Observations string `json:"observations"`
}

// UpdateEventRequest corpo de PUT /api/events/:id. Campos nil não mudam.
type UpdateEventRequest struct {
	Name         *string `json:"name"`
	Date         *string `json:"date"`
	Type         *string `json:"type"`
	Observations *string `json:"observations"`
}

// EventResponse evento com a receita total derivada das entradas.
type EventResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	Observations string          `json:"observations,omitempty"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
