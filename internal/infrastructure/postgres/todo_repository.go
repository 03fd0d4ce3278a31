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

var _ repository.TodoRepository = (*TodoRepo)(nil)

// TodoRepo implementación del puerto TodoRepository sobre PostgreSQL.
type TodoRepo struct {
	q Querier
}

// NewTodoRepository construye el adaptador.
func NewTodoRepository(q Querier) *TodoRepo {
	return &TodoRepo{q: q}
}

type todoRow struct {
	ID         string     `db:"id"`
	BusinessID string     `db:"business_id"`
	Text       string     `db:"text"`
	Completed  bool       `db:"completed"`
	Priority   string     `db:"priority"`
	DueDate    *time.Time `db:"due_date"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (r todoRow) toEntity() *entity.Todo {
	return &entity.Todo{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Text:       r.Text,
		Completed:  r.Completed,
		Priority:   r.Priority,
		DueDate:    r.DueDate,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

var todoColumns = []string{"id", "business_id", "text", "completed", "priority", "due_date", "created_at", "updated_at"}

// Create persiste una nueva tarea.
func (r *TodoRepo) Create(ctx context.Context, t *entity.Todo) error {
	sql, args, err := psql.Insert("todos").
		Columns(todoColumns...).
		Values(t.ID, t.BusinessID, t.Text, t.Completed, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert todo: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea del negocio; nil si no existe.
func (r *TodoRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Todo, error) {
	sql, args, err := psql.Select(todoColumns...).From("todos").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get todo: %w", err)
	}
	var row todoRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return row.toEntity(), nil
}

// Update actualiza texto, estado, prioridad y fecha.
func (r *TodoRepo) Update(ctx context.Context, t *entity.Todo) error {
	sql, args, err := psql.Update("todos").
		Set("text", t.Text).
		Set("completed", t.Completed).
		Set("priority", t.Priority).
		Set("due_date", t.DueDate).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID, "business_id": t.BusinessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update todo: %w", err)
	}
	cmd, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tarea del negocio.
func (r *TodoRepo) Delete(ctx context.Context, businessID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista tareas: pendientes primero, luego por fecha de creación descendente.
func (r *TodoRepo) List(ctx context.Context, businessID string, f repository.TodoFilter) ([]*entity.Todo, error) {
	q := psql.Select(todoColumns...).From("todos").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("completed", "created_at DESC", "id")
	switch f.Status {
	case repository.TodoStatusActive:
		q = q.Where(squirrel.Eq{"completed": false})
	case repository.TodoStatusCompleted:
		q = q.Where(squirrel.Eq{"completed": true})
	}
	if f.Query != "" {
		q = q.Where(squirrel.ILike{"text": likePattern(f.Query)})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list todos: %w", err)
	}
	var rows []todoRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	list := make([]*entity.Todo, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}
