package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL.
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, owner_id, name, category, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, b.ID, b.OwnerID, b.Name, b.Category, b.Logo, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID; nil si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `
		SELECT id, owner_id, name, category, logo, created_at, updated_at
		FROM businesses WHERE id = $1`
	var b entity.Business
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.OwnerID, &b.Name, &b.Category, &b.Logo, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// ListByOwner lista los negocios de un usuario, más recientes primero.
func (r *BusinessRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Business, error) {
	query := `
		SELECT id, owner_id, name, category, logo, created_at, updated_at
		FROM businesses WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	list := []*entity.Business{}
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Category, &b.Logo, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza nombre, categoría y logo.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE businesses SET name = $2, category = $3, logo = $4, updated_at = $5 WHERE id = $1`,
		b.ID, b.Name, b.Category, b.Logo, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el negocio; productos, materiales, tareas, archivos y transacciones caen en cascada.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
