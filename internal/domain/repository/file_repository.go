package repository

import (
	"context"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// FileRepository define el puerto de persistencia para metadatos de archivos (DIP).
type FileRepository interface {
	Create(ctx context.Context, f *entity.FileItem) error
	GetByID(ctx context.Context, businessID, id string) (*entity.FileItem, error)
	// ListChildren lista el contenido de una carpeta; parentID nil = raíz.
	ListChildren(ctx context.Context, businessID string, parentID *string) ([]*entity.FileItem, error)
	// DeleteTree elimina el elemento y todos sus descendientes; devuelve cuántos se borraron.
	DeleteTree(ctx context.Context, businessID, id string) (int64, error)
}
