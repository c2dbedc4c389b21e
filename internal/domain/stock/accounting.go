// Package stock implementa o motor de contabilidade de lotes: criação,
// consumo (saídas) e encerramento automático quando o disponível chega a zero.
//
// Todas as reduções de estoque passam por ApplyConsumption, seja uma saída
// manual (motivo livre) ou o consumo derivado do beer control de uma entrada
// (motivo fixo "evento"). Um único primitivo garante que o log de movimentos
// e a quantidade disponível nunca divergem.
package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
)

// validCategories estilos aceitos na criação de lotes.
var validCategories = map[string]bool{
	entity.StockCategoryPilsen: true,
	entity.StockCategoryIPA:    true,
	entity.StockCategoryWeiss:  true,
	entity.StockCategoryPorter: true,
	entity.StockCategoryLager:  true,
}

// LotInput campos para criação de um lote.
type LotInput struct {
	ProductName  string
	Category     string
	EntryDate    time.Time
	ExpiryDate   time.Time
	UnitLiters   decimal.Decimal
	UnitCount    int
	UnitPrice    decimal.Decimal
	Observations string
}

// NewLot cria um lote ativo com quantidade inicial = UnitLiters * UnitCount.
// Retorna ErrInvalidInput se litragem, unidades ou preço não forem positivos,
// ou se a categoria não for um estilo conhecido.
func NewLot(in LotInput, now time.Time) (*entity.StockItem, error) {
	if in.ProductName == "" || !validCategories[in.Category] {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitLiters.IsPositive() || in.UnitCount <= 0 || !in.UnitPrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	initial := in.UnitLiters.Mul(decimal.NewFromInt(int64(in.UnitCount)))
	return &entity.StockItem{
		ID:                      uuid.New().String(),
		ProductName:             in.ProductName,
		Category:                in.Category,
		EntryDate:               in.EntryDate,
		ExpiryDate:              in.ExpiryDate,
		UnitLiters:              in.UnitLiters,
		UnitCount:               in.UnitCount,
		UnitPrice:               in.UnitPrice,
		InitialQuantityLiters:   initial,
		AvailableQuantityLiters: initial,
		Status:                  entity.StockStatusActive,
		Observations:            in.Observations,
		Movements:               []entity.StockMovement{},
		CreatedAt:               now,
		UpdatedAt:               now,
	}, nil
}

// ApplyConsumption registra uma redução de quantity litros no lote.
//
// Pré-condições: lote ativo e 0 < quantity <= disponível. Em caso de
// violação o lote permanece inalterado e o erro tipado correspondente é
// devolvido (ErrLotClosed, ErrInvalidInput, ErrInsufficientStock).
//
// Em caso de sucesso: acrescenta um movimento ao log, decrementa o
// disponível e, se o restante for <= 0, encerra o lote (status + data de
// encerramento). A aritmética decimal elimina resíduos de ponto flutuante;
// ainda assim o restante é travado em zero como piso.
func ApplyConsumption(lot *entity.StockItem, quantity decimal.Decimal, reason string, now time.Time) (*entity.StockMovement, error) {
	if lot.Status == entity.StockStatusClosed {
		return nil, domain.ErrLotClosed
	}
	if !quantity.IsPositive() || !validReason(reason) {
		return nil, domain.ErrInvalidInput
	}
	if quantity.GreaterThan(lot.AvailableQuantityLiters) {
		return nil, domain.ErrInsufficientStock
	}

	movement := entity.StockMovement{
		ID:          uuid.New().String(),
		StockItemID: lot.ID,
		Date:        now,
		Quantity:    quantity,
		Reason:      reason,
	}

	remaining := lot.AvailableQuantityLiters.Sub(quantity)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	lot.AvailableQuantityLiters = remaining
	lot.Movements = append(lot.Movements, movement)
	lot.UpdatedAt = now

	if remaining.LessThanOrEqual(decimal.Zero) {
		closure := now
		lot.Status = entity.StockStatusClosed
		lot.ClosureDate = &closure
	}

	return &movement, nil
}

// ConsumeFromEntry aplica o consumo derivado de uma linha de beer control:
// consumido = retirado - devolvido, com motivo fixo "evento".
// Devolvido > retirado é erro de validação; consumo zero é um no-op e
// devolve movimento nil.
func ConsumeFromEntry(lot *entity.StockItem, taken, returned decimal.Decimal, now time.Time) (*entity.StockMovement, error) {
	if taken.IsNegative() || returned.IsNegative() || returned.GreaterThan(taken) {
		return nil, domain.ErrInvalidInput
	}
	consumed := taken.Sub(returned)
	if consumed.IsZero() {
		return nil, nil
	}
	return ApplyConsumption(lot, consumed, entity.ExitReasonEvent, now)
}

// MetadataInput campos descritivos editáveis de um lote. Campos nil não
// são alterados. Litragem, unidades e quantidades derivadas são imutáveis
// após a criação.
type MetadataInput struct {
	ProductName  *string
	Category     *string
	EntryDate    *time.Time
	ExpiryDate   *time.Time
	UnitPrice    *decimal.Decimal
	Observations *string
}

// EditMetadata atualiza os campos descritivos do lote.
func EditMetadata(lot *entity.StockItem, in MetadataInput, now time.Time) error {
	if in.ProductName != nil {
		if *in.ProductName == "" {
			return domain.ErrInvalidInput
		}
		lot.ProductName = *in.ProductName
	}
	if in.Category != nil {
		if !validCategories[*in.Category] {
			return domain.ErrInvalidInput
		}
		lot.Category = *in.Category
	}
	if in.EntryDate != nil {
		lot.EntryDate = *in.EntryDate
	}
	if in.ExpiryDate != nil {
		lot.ExpiryDate = *in.ExpiryDate
	}
	if in.UnitPrice != nil {
		if !in.UnitPrice.IsPositive() {
			return domain.ErrInvalidInput
		}
		lot.UnitPrice = *in.UnitPrice
	}
	if in.Observations != nil {
		lot.Observations = *in.Observations
	}
	lot.UpdatedAt = now
	return nil
}

func validReason(reason string) bool {
	switch reason {
	case entity.ExitReasonEvent, entity.ExitReasonLoss, entity.ExitReasonInternal:
		return true
	}
	return false
}
