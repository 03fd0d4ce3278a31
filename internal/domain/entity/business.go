package entity

import "time"

// Business representa un espacio de trabajo (tenant) de un usuario: una UMKM.
type Business struct {
	ID        string
	OwnerID   string
	Name      string
	Category  string // kuliner, fashion, kerajinan, jasa, ...
	Logo      string // URL o clave del logo, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy indica si el usuario es dueño del negocio.
func (b *Business) OwnedBy(userID string) bool {
	return b != nil && b.OwnerID == userID
}
