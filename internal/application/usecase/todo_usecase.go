package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// TodoUseCase casos de uso de la lista de tareas de un negocio.
type TodoUseCase struct {
	repo repository.TodoRepository
}

// NewTodoUseCase construye el caso de uso.
func NewTodoUseCase(repo repository.TodoRepository) *TodoUseCase {
	return &TodoUseCase{repo: repo}
}

// Create crea una tarea pendiente. La prioridad por defecto es "medium".
func (uc *TodoUseCase) Create(ctx context.Context, businessID string, in dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Todo{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Text:       text,
		Priority:   priority,
		DueDate:    in.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTodoResponse(t), nil
}

// Update actualiza los campos enviados.
func (uc *TodoUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateTodoRequest) (*dto.TodoResponse, error) {
	t, err := uc.get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if in.Text != nil {
		if t.Text = strings.TrimSpace(*in.Text); t.Text == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		t.Priority = *in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	return uc.save(ctx, t)
}

// Toggle invierte el estado completado de la tarea.
func (uc *TodoUseCase) Toggle(ctx context.Context, businessID, id string) (*dto.TodoResponse, error) {
	t, err := uc.get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	t.Completed = !t.Completed
	return uc.save(ctx, t)
}

// Delete elimina una tarea.
func (uc *TodoUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.Delete(ctx, businessID, id)
}

// List lista tareas con filtro de estado y búsqueda.
func (uc *TodoUseCase) List(ctx context.Context, businessID string, in dto.TodoListRequest) ([]dto.TodoResponse, error) {
	status := in.Status
	if status == "" {
		status = repository.TodoStatusAll
	}
	list, err := uc.repo.List(ctx, businessID, repository.TodoFilter{Status: status, Query: strings.TrimSpace(in.Query)})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TodoResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTodoResponse(t))
	}
	return out, nil
}

func (uc *TodoUseCase) get(ctx context.Context, businessID, id string) (*entity.Todo, error) {
	t, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (uc *TodoUseCase) save(ctx context.Context, t *entity.Todo) (*dto.TodoResponse, error) {
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTodoResponse(t), nil
}

func toTodoResponse(t *entity.Todo) *dto.TodoResponse {
	return &dto.TodoResponse{
		ID:         t.ID,
		BusinessID: t.BusinessID,
		Text:       t.Text,
		Completed:  t.Completed,
		Priority:   t.Priority,
		DueDate:    t.DueDate,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
