// Package stock contém os casos de uso do módulo de estoque: criação de
// lotes, registro de saídas e edição de metadados.
package stock

import (
	"context"
	"time"

	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
	stockdomain "github.com/seu-usuario/choperia-api/internal/domain/stock"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// UseCase casos de uso de estoque. Saídas passam pelo TxRunner com bloqueio
// de linha (SELECT FOR UPDATE); o resto usa o repositório direto.
type UseCase struct {
	repo     repository.StockRepository
	txRunner TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.StockRepository, txRunner TxRunner) *UseCase {
	return &UseCase{repo: repo, txRunner: txRunner}
}

// CreateLot cria um lote ativo com quantidade inicial derivada de
// litragem x unidades.
func (uc *UseCase) CreateLot(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	entryDate, err := parseDate(in.EntryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	expiryDate, err := parseDate(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	lot, err := stockdomain.NewLot(stockdomain.LotInput{
		ProductName:  in.ProductName,
		Category:     in.Category,
		EntryDate:    entryDate,
		ExpiryDate:   expiryDate,
		UnitLiters:   in.UnitLiters,
		UnitCount:    in.UnitCount,
		UnitPrice:    in.UnitPrice,
		Observations: in.Observations,
	}, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(lot); err != nil {
		return nil, err
	}
	return toStockItemResponse(lot), nil
}

// RegisterExit registra uma saída manual no lote. O lote é bloqueado na
// transação, o movimento é gravado e o lote atualizado; encerra
// automaticamente quando o disponível chega a zero.
func (uc *UseCase) RegisterExit(ctx context.Context, lotID string, in dto.RegisterExitRequest) (*dto.StockItemResponse, error) {
	var updated *entity.StockItem
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		lot, err := stockRepo.GetForUpdate(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		movement, err := stockdomain.ApplyConsumption(lot, in.Quantity, in.Reason, time.Now())
		if err != nil {
			return err
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if err := stockRepo.Update(lot); err != nil {
			return err
		}
		updated = lot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStockItemResponse(updated), nil
}

// EditMetadata atualiza campos descritivos do lote; litragem, unidades e
// quantidades derivadas são imutáveis.
func (uc *UseCase) EditMetadata(lotID string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	lot, err := uc.repo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}

	meta := stockdomain.MetadataInput{
		ProductName:  in.ProductName,
		Category:     in.Category,
		UnitPrice:    in.UnitPrice,
		Observations: in.Observations,
	}
	if in.EntryDate != nil {
		d, err := parseDate(*in.EntryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		meta.EntryDate = &d
	}
	if in.ExpiryDate != nil {
		d, err := parseDate(*in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		meta.ExpiryDate = &d
	}

	if err := stockdomain.EditMetadata(lot, meta, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	return toStockItemResponse(lot), nil
}

// GetByID obtém um lote com o log de movimentos.
func (uc *UseCase) GetByID(lotID string) (*dto.StockItemResponse, error) {
	lot, err := uc.repo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(lot), nil
}

// List lista lotes aplicando o conjunto de filtros em memória.
func (uc *UseCase) List(f filter.StockFilter) ([]*dto.StockItemResponse, error) {
	items, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(items, f.Match)
	out := make([]*dto.StockItemResponse, 0, len(filtered))
	for _, item := range filtered {
		out = append(out, toStockItemResponse(item))
	}
	return out, nil
}

// Delete remove um lote e seu log de movimentos.
func (uc *UseCase) Delete(lotID string) error {
	lot, err := uc.repo.GetByID(lotID)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(lotID)
}

func toStockItemResponse(lot *entity.StockItem) *dto.StockItemResponse {
	movements := make([]dto.StockMovementResponse, 0, len(lot.Movements))
	for _, m := range lot.Movements {
		movements = append(movements, dto.StockMovementResponse{
			ID:       m.ID,
			Date:     m.Date,
			Quantity: m.Quantity,
			Reason:   m.Reason,
		})
	}
	return &dto.StockItemResponse{
		ID:                      lot.ID,
		ProductName:             lot.ProductName,
		Category:                lot.Category,
		EntryDate:               filter.ISODate(lot.EntryDate),
		ExpiryDate:              filter.ISODate(lot.ExpiryDate),
		UnitLiters:              lot.UnitLiters,
		UnitCount:               lot.UnitCount,
		UnitPrice:               lot.UnitPrice,
		InitialQuantityLiters:   lot.InitialQuantityLiters,
		AvailableQuantityLiters: lot.AvailableQuantityLiters,
		Status:                  lot.Status,
		ClosureDate:             lot.ClosureDate,
		Observations:            lot.Observations,
		Movements:               movements,
		CreatedAt:               lot.CreatedAt,
		UpdatedAt:               lot.UpdatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
