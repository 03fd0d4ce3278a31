package entity

import "time"

// Prioridades de tareas.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Todo tarea pendiente de un negocio.
type Todo struct {
	ID         string
	BusinessID string
	Text       string
	Completed  bool
	Priority   string
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidPriority indica si p es una prioridad conocida.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
