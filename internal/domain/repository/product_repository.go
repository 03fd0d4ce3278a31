package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	Query    string // busca en nombre y categoría (ILIKE)
	Category string
	Limit    int // 0 = sin límite
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, businessID, id string) error
	List(ctx context.Context, businessID string, f ProductFilter) ([]*entity.Product, error)
}
