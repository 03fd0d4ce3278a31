package entity

import "time"

// FileItem metadatos de un archivo o carpeta del gestor de archivos de un negocio.
// El contenido no se almacena aquí.
type FileItem struct {
	ID         string
	BusinessID string
	ParentID   *string // nil = raíz
	Name       string
	Type       string // MIME o "folder"
	Size       int64  // bytes; 0 para carpetas
	IsFolder   bool
	CreatedAt  time.Time
}

// FolderType valor de Type para carpetas.
const FolderType = "folder"
