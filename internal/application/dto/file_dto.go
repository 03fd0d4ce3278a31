package dto

import "time"

// CreateFileRequest entrada para registrar un archivo o carpeta.
type CreateFileRequest struct {
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Type     string  `json:"type" validate:"omitempty,max=100"`
	Size     int64   `json:"size" validate:"min=0"`
	IsFolder bool    `json:"is_folder"`
}

// FileResponse salida de un elemento del gestor de archivos.
type FileResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	ParentID   *string   `json:"parent_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	IsFolder   bool      `json:"is_folder"`
	CreatedAt  time.Time `json:"created_at"`
}
