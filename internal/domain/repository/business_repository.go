package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	Delete(ctx context.Context, id string) error
}
