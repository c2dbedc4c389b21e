package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOutputRequest corpo de POST /api/outputs. Date no formato yyyy-mm-dd.
type CreateOutputRequest struct {
	Date          string          `json:"date"`
	CategoryID    string          `json:"category_id"`
	EventID       string          `json:"event_id"`
	PaymentMethod string          `json:"payment_method"`
	Value         decimal.Decimal `json:"value"`
	Description   string          `json:"description"`
}

// UpdateOutputRequest corpo de PUT /api/outputs/:id. Campos nil não mudam.
type UpdateOutputRequest struct {
	Date          *string          `json:"date"`
	CategoryID    *string          `json:"category_id"`
	EventID       *string          `json:"event_id"`
	PaymentMethod *string          `json:"payment_method"`
	Value         *decimal.Decimal `json:"value"`
	Description   *string          `json:"description"`
}

// OutputResponse saída com nome de categoria resolvido por lookup.
type OutputResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	EventID       string          `json:"event_id,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Value         decimal.Decimal `json:"value"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
