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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

type materialRow struct {
	ID           string          `db:"id"`
	BusinessID   string          `db:"business_id"`
	Name         string          `db:"name"`
	Category     string          `db:"category"`
	Unit         string          `db:"unit"`
	Stock        decimal.Decimal `db:"stock"`
	PricePerUnit decimal.Decimal `db:"price_per_unit"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r materialRow) toEntity() *entity.Material {
	return &entity.Material{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		Name:         r.Name,
		Category:     r.Category,
		Unit:         r.Unit,
		Stock:        r.Stock,
		PricePerUnit: r.PricePerUnit,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

var materialColumns = []string{"id", "business_id", "name", "category", "unit", "stock", "price_per_unit", "created_at", "updated_at"}

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	sql, args, err := psql.Insert("materials").
		Columns(materialColumns...).
		Values(m.ID, m.BusinessID, m.Name, m.Category, m.Unit, m.Stock, m.PricePerUnit, m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert material: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isNumericOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material del negocio; nil si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Material, error) {
	return r.get(ctx, psql.Select(materialColumns...).From("materials").
		Where(squirrel.Eq{"id": id, "business_id": businessID}))
}

// GetForUpdate como GetByID pero con SELECT ... FOR UPDATE.
func (r *MaterialRepo) GetForUpdate(ctx context.Context, businessID, id string) (*entity.Material, error) {
	return r.get(ctx, psql.Select(materialColumns...).From("materials").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		Suffix("FOR UPDATE"))
}

func (r *MaterialRepo) get(ctx context.Context, q squirrel.SelectBuilder) (*entity.Material, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get material: %w", err)
	}
	var row materialRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return row.toEntity(), nil
}

// Update actualiza el material completo (incluye stock y precio por unidad).
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	sql, args, err := psql.Update("materials").
		SetMap(map[string]any{
			"name":           m.Name,
			"category":       m.Category,
			"unit":           m.Unit,
			"stock":          m.Stock,
			"price_per_unit": m.PricePerUnit,
			"updated_at":     m.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": m.ID, "business_id": m.BusinessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update material: %w", err)
	}
	cmd, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isNumericOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un material del negocio.
func (r *MaterialRepo) Delete(ctx context.Context, businessID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista materiales del negocio ordenados por nombre; query filtra por nombre o categoría.
func (r *MaterialRepo) List(ctx context.Context, businessID, query string) ([]*entity.Material, error) {
	q := psql.Select(materialColumns...).
		From("materials").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name", "id")
	if query != "" {
		pattern := likePattern(query)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"category": pattern},
		})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list materials: %w", err)
	}
	var rows []materialRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	list := make([]*entity.Material, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}
