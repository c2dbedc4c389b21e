package usecase

import (
	"context"

	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// EntryTxRunner executa uma função dentro de uma transação de BD com os
// repositórios de entradas e estoque atados a ela. Usado na criação de
// entradas com beer control: a entrada e os consumos de lote fazem commit
// ou rollback juntos.
type EntryTxRunner interface {
	RunEntry(ctx context.Context, fn func(
		entryRepo repository.EntryRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
