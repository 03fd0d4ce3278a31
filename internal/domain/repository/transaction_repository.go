package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	// ListByBusiness devuelve las transacciones más recientes primero; limit 0 = todas.
	ListByBusiness(ctx context.Context, businessID string, limit int) ([]*entity.Transaction, error)
}
