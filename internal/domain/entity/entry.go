package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento (conjunto único para entradas e saídas).
const (
	PaymentCash       = "dinheiro"
	PaymentPix        = "pix"
	PaymentCreditCard = "cartao_credito"
	PaymentDebitCard  = "cartao_debito"
)

// Entry representa um registro de receita. EventID referencia Event por id;
// a resolução para nome de exibição acontece via lookup (nunca pelo nome).
type Entry struct {
	ID            string
	Date          time.Time
	CategoryID    string
	EventID       string // vazio = sem evento
	EventType     string // fechado, avulso
	PaymentMethod string // obrigatório quando EventType = fechado
	Value         decimal.Decimal
	Description   string
	BeerControl   []BeerControl
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BeerControl liga uma entrada aos lotes de chopp consumidos nela.
// A quantidade consumida é QuantityTaken - QuantityReturned.
type BeerControl struct {
	ID               string
	EntryID          string
	StockItemID      string
	QuantityTaken    decimal.Decimal
	QuantityReturned decimal.Decimal
}

// Consumed devolve os litros efetivamente consumidos pela linha.
func (b BeerControl) Consumed() decimal.Decimal {
	return b.QuantityTaken.Sub(b.QuantityReturned)
}
