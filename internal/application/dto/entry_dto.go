package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeerControlRequest linha de beer control de uma entrada.
type BeerControlRequest struct {
	StockItemID      string          `json:"stock_item_id"`
	QuantityTaken    decimal.Decimal `json:"quantity_taken"`
	QuantityReturned decimal.Decimal `json:"quantity_returned"`
}

// CreateEntryRequest corpo de POST /api/entries. Date no formato yyyy-mm-dd.
// PaymentMethod é obrigatório quando EventType = fechado. As linhas de beer
// control aplicam consumo nos lotes referenciados na mesma transação.
type CreateEntryRequest struct {
	Date          string               `json:"date"`
	CategoryID    string               `json:"category_id"`
	EventID       string               `json:"event_id"`
	EventType     string               `json:"event_type"`
	PaymentMethod string               `json:"payment_method"`
	Value         decimal.Decimal      `json:"value"`
	Description   string               `json:"description"`
	BeerControl   []BeerControlRequest `json:"beer_control"`
}

// UpdateEntryRequest corpo de PUT /api/entries/:id. Campos nil não mudam.
// Beer control não é reprocessado em edição; o consumo de estoque só
// acontece na criação.
type UpdateEntryRequest struct {
	Date          *string          `json:"date"`
	CategoryID    *string          `json:"category_id"`
	EventID       *string          `json:"event_id"`
	EventType     *string          `json:"event_type"`
	PaymentMethod *string          `json:"payment_method"`
	Value         *decimal.Decimal `json:"value"`
	Description   *string          `json:"description"`
}

// BeerControlResponse linha de beer control persistida.
type BeerControlResponse struct {
	StockItemID      string          `json:"stock_item_id"`
	QuantityTaken    decimal.Decimal `json:"quantity_taken"`
	QuantityReturned decimal.Decimal `json:"quantity_returned"`
	Consumed         decimal.Decimal `json:"consumed"`
}

// EntryResponse entrada com nomes de exibição resolvidos por lookup.
type EntryResponse struct {
	ID            string                `json:"id"`
	Date          string                `json:"date"`
	CategoryID    string                `json:"category_id"`
	CategoryName  string                `json:"category_name,omitempty"`
	EventID       string                `json:"event_id,omitempty"`
	EventName     string                `json:"event_name,omitempty"`
	EventType     string                `json:"event_type"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	Value         decimal.Decimal       `json:"value"`
	Description   string                `json:"description,omitempty"`
	BeerControl   []BeerControlResponse `json:"beer_control,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
