package stock

import (
	"context"

	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que o movimento e a atualização do
// lote são atômicos (commit ou rollback juntos).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
