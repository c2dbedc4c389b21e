package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estilos de chopp aceitos em estoque.
const (
	StockCategoryPilsen = "Pilsen"
	StockCategoryIPA    = "IPA"
	StockCategoryWeiss  = "Weiss"
	StockCategoryPorter = "Porter"
	StockCategoryLager  = "Lager"
)

// Status de um lote de estoque.
const (
	StockStatusActive = "ativo"
	StockStatusClosed = "encerrado"
)

// StockItem representa um lote de estoque: um conjunto de barris recebidos
// juntos, com quantidade inicial fixa em litros.
//
// Invariantes mantidos pelo motor de estoque (internal/domain/stock):
//   - AvailableQuantityLiters <= InitialQuantityLiters, nunca negativo;
//   - Status transita ativo -> encerrado exatamente uma vez e nunca reverte;
//   - ClosureDate é definido se e somente se Status = encerrado.
type StockItem struct {
	ID          string
	ProductName string
	Category    string // Pilsen, IPA, Weiss, Porter, Lager
	EntryDate   time.Time
	ExpiryDate  time.Time

	UnitLiters decimal.Decimal // litros por barril
	UnitCount  int             // barris no lote
	UnitPrice  decimal.Decimal

	// InitialQuantityLiters = UnitLiters * UnitCount, imutável após a criação.
	InitialQuantityLiters   decimal.Decimal
	AvailableQuantityLiters decimal.Decimal

	Status       string // ativo, encerrado
	ClosureDate  *time.Time
	Observations string

	// Movements é append-only, em ordem cronológica de registro.
	Movements []StockMovement

	CreatedAt time.Time
	UpdatedAt time.Time
}
