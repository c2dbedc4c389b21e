package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest corpo de POST /api/stock. Datas em yyyy-mm-dd.
type CreateStockItemRequest struct {
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"` // Pilsen | IPA | Weiss | Porter | Lager
	EntryDate    string          `json:"entry_date"`
	ExpiryDate   string          `json:"expiry_date"`
	UnitLiters   decimal.Decimal `json:"unit_liters"`
	UnitCount    int             `json:"unit_count"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Observations string          `json:"observations"`
}

// UpdateStockItemRequest corpo de PUT /api/stock/:id. Somente campos
// descritivos; litragem e unidades são imutáveis após a criação.
type UpdateStockItemRequest struct {
	ProductName  *string          `json:"product_name"`
	Category     *string          `json:"category"`
	EntryDate    *string          `json:"entry_date"`
	ExpiryDate   *string          `json:"expiry_date"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Observations *string          `json:"observations"`
}

// RegisterExitRequest corpo de POST /api/stock/:id/exits.
type RegisterExitRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"` // evento | perda | consumo_interno
}

// StockMovementResponse movimento do log de um lote.
type StockMovementResponse struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

// StockItemResponse lote com log de movimentos.
type StockItemResponse struct {
	ID                      string                  `json:"id"`
	ProductName             string                  `json:"product_name"`
	Category                string                  `json:"category"`
	EntryDate               string                  `json:"entry_date"`
	ExpiryDate              string                  `json:"expiry_date"`
	UnitLiters              decimal.Decimal         `json:"unit_liters"`
	UnitCount               int                     `json:"unit_count"`
	UnitPrice               decimal.Decimal         `json:"unit_price"`
	InitialQuantityLiters   decimal.Decimal         `json:"initial_quantity_liters"`
	AvailableQuantityLiters decimal.Decimal         `json:"available_quantity_liters"`
	Status                  string                  `json:"status"`
	ClosureDate             *time.Time              `json:"closure_date,omitempty"`
	Observations            string                  `json:"observations,omitempty"`
	Movements               []StockMovementResponse `json:"movements"`
	CreatedAt               time.Time               `json:"created_at"`
	UpdatedAt               time.Time               `json:"updated_at"`
}
