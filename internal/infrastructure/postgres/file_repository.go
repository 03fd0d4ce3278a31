package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo implementación del puerto FileRepository sobre PostgreSQL.
type FileRepo struct {
	q Querier
}

// NewFileRepository construye el adaptador.
func NewFileRepository(q Querier) *FileRepo {
	return &FileRepo{q: q}
}

type fileRow struct {
	ID         string    `db:"id"`
	BusinessID string    `db:"business_id"`
	ParentID   *string   `db:"parent_id"`
	Name       string    `db:"name"`
	Type       string    `db:"type"`
	Size       int64     `db:"size"`
	IsFolder   bool      `db:"is_folder"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r fileRow) toEntity() *entity.FileItem {
	return &entity.FileItem{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		ParentID:   r.ParentID,
		Name:       r.Name,
		Type:       r.Type,
		Size:       r.Size,
		IsFolder:   r.IsFolder,
		CreatedAt:  r.CreatedAt,
	}
}

var fileColumns = []string{"id", "business_id", "parent_id", "name", "type", "size", "is_folder", "created_at"}

// Create persiste los metadatos de un archivo o carpeta.
func (r *FileRepo) Create(ctx context.Context, f *entity.FileItem) error {
	sql, args, err := psql.Insert("files").
		Columns(fileColumns...).
		Values(f.ID, f.BusinessID, f.ParentID, f.Name, f.Type, f.Size, f.IsFolder, f.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert file: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert file: %w", err)
	}
	return nil
}

// GetByID obtiene un elemento del negocio; nil si no existe.
func (r *FileRepo) GetByID(ctx context.Context, businessID, id string) (*entity.FileItem, error) {
	sql, args, err := psql.Select(fileColumns...).From("files").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get file: %w", err)
	}
	var row fileRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get file: %w", err)
	}
	return row.toEntity(), nil
}

// ListChildren lista carpetas primero y luego archivos, por nombre.
func (r *FileRepo) ListChildren(ctx context.Context, businessID string, parentID *string) ([]*entity.FileItem, error) {
	// squirrel.Eq con nil genera "parent_id IS NULL"
	var parent any
	if parentID != nil {
		parent = *parentID
	}
	sql, args, err := psql.Select(fileColumns...).From("files").
		Where(squirrel.Eq{"business_id": businessID, "parent_id": parent}).
		OrderBy("is_folder DESC", "name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list files: %w", err)
	}
	var rows []fileRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	list := make([]*entity.FileItem, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// DeleteTree elimina el elemento y sus descendientes.
func (r *FileRepo) DeleteTree(ctx context.Context, businessID, id string) (int64, error) {
	query := `
		WITH RECURSIVE tree AS (
			SELECT id FROM files WHERE id = $1 AND business_id = $2
			UNION ALL
			SELECT f.id FROM files f JOIN tree t ON f.parent_id = t.id
		)
		DELETE FROM files WHERE id IN (SELECT id FROM tree)`
	cmd, err := r.q.Exec(ctx, query, id, businessID)
	if err != nil {
		return 0, fmt.Errorf("delete file tree: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return 0, domain.ErrNotFound
	}
	return cmd.RowsAffected(), nil
}
