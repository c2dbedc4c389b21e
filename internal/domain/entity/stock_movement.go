package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de saída de estoque.
const (
	ExitReasonEvent    = "evento"
	ExitReasonLoss     = "perda"
	ExitReasonInternal = "consumo_interno"
)

// StockMovement é uma redução registrada da quantidade disponível de um lote.
// Imutável depois de criado; Quantity é sempre positiva (litros consumidos).
type StockMovement struct {
	ID          string
	StockItemID string
	Date        time.Time
	Quantity    decimal.Decimal
	Reason      string // evento, perda, consumo_interno
}
