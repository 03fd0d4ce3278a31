package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

type productRow struct {
	ID           string          `db:"id"`
	BusinessID   string          `db:"business_id"`
	Name         string          `db:"name"`
	Category     string          `db:"category"`
	HPP          decimal.Decimal `db:"hpp"`
	SellingPrice decimal.Decimal `db:"selling_price"`
	Stock        decimal.Decimal `db:"stock"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		Name:         r.Name,
		Category:     r.Category,
		HPP:          r.HPP,
		SellingPrice: r.SellingPrice,
		Stock:        r.Stock,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

var productColumns = []string{"id", "business_id", "name", "category", "hpp", "selling_price", "stock", "created_at", "updated_at"}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	sql, args, err := psql.Insert("products").
		Columns(productColumns...).
		Values(p.ID, p.BusinessID, p.Name, p.Category, p.HPP, p.SellingPrice, p.Stock, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isNumericOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del negocio; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Product, error) {
	sql, args, err := psql.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// Update actualiza todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	sql, args, err := psql.Update("products").
		Set("name", p.Name).
		Set("category", p.Category).
		Set("hpp", p.HPP).
		Set("selling_price", p.SellingPrice).
		Set("stock", p.Stock).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID, "business_id": p.BusinessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}
	cmd, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isNumericOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto del negocio.
func (r *ProductRepo) Delete(ctx context.Context, businessID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos del negocio, más recientes primero, con búsqueda y filtro por categoría.
func (r *ProductRepo) List(ctx context.Context, businessID string, f repository.ProductFilter) ([]*entity.Product, error) {
	q := psql.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at DESC", "id")
	if f.Query != "" {
		pattern := likePattern(f.Query)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"category": pattern},
		})
	}
	if f.Category != "" {
		q = q.Where(squirrel.Eq{"category": f.Category})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit)).Offset(uint64(max(f.Offset, 0)))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}
