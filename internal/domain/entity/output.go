package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Output representa um registro de despesa.
type Output struct {
	ID            string
	Date          time.Time
	CategoryID    string
	EventID       string // vazio = sem evento
	PaymentMethod string
	Value         decimal.Decimal
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
