package dto

import "time"

// CreateBusinessRequest entrada para crear un negocio.
type CreateBusinessRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Logo     string `json:"logo" validate:"omitempty,max=500"`
}

// UpdateBusinessRequest entrada para actualizar un negocio (campos opcionales).
type UpdateBusinessRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Logo     *string `json:"logo" validate:"omitempty,max=500"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
