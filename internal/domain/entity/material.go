package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// Material representa una materia prima en el stock de un negocio.
// PricePerUnit es costo promedio ponderado, actualizado en cada reposición.
type Material struct {
	ID           string
	BusinessID   string
	Name         string
	Category     string
	Unit         string // kg, liter, pcs, ...
	Stock        decimal.Decimal
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot convierte el material al modelo del motor (costo = precio por unidad).
func (m *Material) Snapshot() pricing.Product {
	return pricing.FromMaterial(m.ID, m.Name, m.Category, m.Stock, m.PricePerUnit)
}

// MaterialSnapshots convierte una lista completa.
func MaterialSnapshots(list []*Material) []pricing.Product {
	out := make([]pricing.Product, 0, len(list))
	for _, m := range list {
		out = append(out, m.Snapshot())
	}
	return out
}
