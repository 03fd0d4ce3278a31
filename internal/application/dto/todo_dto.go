package dto

import "time"

// CreateTodoRequest entrada para crear una tarea.
type CreateTodoRequest struct {
	Text     string     `json:"text" validate:"required,min=1,max=500"`
	Priority string     `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate  *time.Time `json:"due_date"`
}

// UpdateTodoRequest entrada para actualizar una tarea (campos opcionales).
type UpdateTodoRequest struct {
	Text      *string    `json:"text" validate:"omitempty,min=1,max=500"`
	Completed *bool      `json:"completed"`
	Priority  *string    `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate   *time.Time `json:"due_date"`
}

// TodoListRequest filtros del listado de tareas.
type TodoListRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=all active completed"`
	Query  string `query:"q"`
}

// TodoResponse salida de una tarea.
type TodoResponse struct {
	ID         string     `json:"id"`
	BusinessID string     `json:"business_id"`
	Text       string     `json:"text"`
	Completed  bool       `json:"completed"`
	Priority   string     `json:"priority"`
	DueDate    *time.Time `json:"due_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
