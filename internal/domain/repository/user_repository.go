package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// ListWithStats lista usuarios con la cantidad de negocios de cada uno (administración).
	ListWithStats(ctx context.Context, limit, offset int) ([]*entity.UserWithStats, error)
}
