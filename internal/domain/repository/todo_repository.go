package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// Filtros de estado para tareas.
const (
	TodoStatusAll       = "all"
	TodoStatusActive    = "active"
	TodoStatusCompleted = "completed"
)

// TodoFilter filtros opcionales para listar tareas.
type TodoFilter struct {
	Status string // all, active, completed
	Query  string
}

// TodoRepository define el puerto de persistencia para Todo (DIP).
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Todo, error)
	Update(ctx context.Context, t *entity.Todo) error
	Delete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, f TodoFilter) ([]*entity.Todo, error)
}
