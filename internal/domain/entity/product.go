package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// Product representa un producto terminado de un negocio.
type Product struct {
	ID           string
	BusinessID   string
	Name         string
	Category     string
	HPP          decimal.Decimal // costo unitario (Harga Pokok Produksi)
	SellingPrice decimal.Decimal
	Stock        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot convierte el producto al modelo del motor de precios.
func (p *Product) Snapshot() pricing.Product {
	return pricing.NewProduct(p.ID, p.Name, p.Category, p.HPP, p.SellingPrice, p.Stock)
}

// ProductSnapshots convierte una lista completa.
func ProductSnapshots(list []*Product) []pricing.Product {
	out := make([]pricing.Product, 0, len(list))
	for _, p := range list {
		out = append(out, p.Snapshot())
	}
	return out
}
