package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Material, error)
	// GetForUpdate obtiene el material bloqueando la fila (usar dentro de una transacción).
	GetForUpdate(ctx context.Context, businessID, id string) (*entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	Delete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID, query string) ([]*entity.Material, error)
}
