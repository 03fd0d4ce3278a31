package ports

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// La reposición de materiales actualiza stock y registra el gasto de forma atómica.
type TxRunner interface {
	RunRestock(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		transactions repository.TransactionRepository,
	) error) error
}
