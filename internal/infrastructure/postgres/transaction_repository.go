package postgres

import (
	"context"
	"fmt"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, business_id, type, description, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, t.ID, t.BusinessID, t.Type, t.Description, t.Amount, t.Date, t.CreatedAt)
	if err != nil {
		if isNumericOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByBusiness lista transacciones del negocio, más recientes primero.
func (r *TransactionRepo) ListByBusiness(ctx context.Context, businessID string, limit int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, business_id, type, description, amount, date, created_at
		FROM transactions WHERE business_id = $1
		ORDER BY date DESC, created_at DESC`
	args := []any{businessID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	list := []*entity.Transaction{}
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.BusinessID, &t.Type, &t.Description, &t.Amount, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
