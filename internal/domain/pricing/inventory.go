package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral por defecto de stock bajo (unidades).
var DefaultLowStockThreshold = decimal.NewFromInt(10)

// Product snapshot de un producto (o material) listo para el motor.
type Product struct {
	ID            string
	Name          string
	Category      string
	CostPerUnit   decimal.Decimal // HPP
	SellingPrice  decimal.Decimal
	StockQuantity decimal.Decimal
}

// NewProduct construye un snapshot normalizando los campos numéricos: texto numérico se
// convierte, valores inválidos o negativos quedan en 0.
func NewProduct(id, name, category string, cost, sellingPrice, stock any) Product {
	return Product{
		ID:            id,
		Name:          name,
		Category:      category,
		CostPerUnit:   NonNegative(cost),
		SellingPrice:  NonNegative(sellingPrice),
		StockQuantity: NonNegative(stock),
	}
}

// FromMaterial trata un material como producto para costeo: costo = precio por unidad,
// sin precio de venta.
func FromMaterial(id, name, category string, stock, pricePerUnit any) Product {
	return NewProduct(id, name, category, pricePerUnit, decimal.Zero, stock)
}

// MarginPercent margen actual del producto; ok=false si no tiene precio de venta.
func (p Product) MarginPercent() (decimal.Decimal, bool) {
	return ComputeMarginPercent(p.CostPerUnit, p.SellingPrice)
}

// AssetValue costo * stock.
func (p Product) AssetValue() decimal.Decimal {
	return p.CostPerUnit.Mul(p.StockQuantity)
}

// CategoryValue valor de inventario (a costo) agrupado por categoría.
type CategoryValue struct {
	Category string
	Value    decimal.Decimal
}

// InventoryHealthSummary agregados de salud de inventario.
type InventoryHealthSummary struct {
	TotalAssetValue    decimal.Decimal
	PotentialRevenue   decimal.Decimal
	StockHealthPercent int
	OutOfStock         []Product
	LowStock           []Product
	Healthy            []Product
	Categories         []CategoryValue // orden descendente por valor, lista completa
}

// Total cantidad de productos resumidos.
func (s InventoryHealthSummary) Total() int {
	return len(s.OutOfStock) + len(s.LowStock) + len(s.Healthy)
}

// SummarizeInventory resume con el umbral por defecto (10).
func SummarizeInventory(products []Product) InventoryHealthSummary {
	return SummarizeInventoryWithThreshold(products, DefaultLowStockThreshold)
}

// SummarizeInventoryWithThreshold particiona los productos en sin stock (== 0), stock bajo
// (0 < qty < umbral) y saludables (≥ umbral), conservando el orden de entrada en cada grupo.
// Stock negativo cuenta como 0.
func SummarizeInventoryWithThreshold(products []Product, threshold decimal.Decimal) InventoryHealthSummary {
	s := InventoryHealthSummary{
		TotalAssetValue:  decimal.Zero,
		PotentialRevenue: decimal.Zero,
		OutOfStock:       []Product{},
		LowStock:         []Product{},
		Healthy:          []Product{},
		Categories:       []CategoryValue{},
	}

	catIndex := make(map[string]int)
	for _, p := range products {
		stock := p.StockQuantity
		switch {
		case stock.Sign() <= 0:
			s.OutOfStock = append(s.OutOfStock, p)
		case stock.LessThan(threshold):
			s.LowStock = append(s.LowStock, p)
		default:
			s.Healthy = append(s.Healthy, p)
		}

		value := p.AssetValue()
		s.TotalAssetValue = s.TotalAssetValue.Add(value)
		s.PotentialRevenue = s.PotentialRevenue.Add(p.SellingPrice.Mul(stock))

		if i, ok := catIndex[p.Category]; ok {
			s.Categories[i].Value = s.Categories[i].Value.Add(value)
		} else {
			catIndex[p.Category] = len(s.Categories)
			s.Categories = append(s.Categories, CategoryValue{Category: p.Category, Value: value})
		}
	}

	// empates conservan el orden de primera aparición
	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].Value.GreaterThan(s.Categories[j].Value)
	})

	s.StockHealthPercent = healthPercent(len(s.Healthy), len(products))
	return s
}

// RestockPriority lista sin stock primero y luego stock bajo, cada grupo en orden de entrada.
func (s InventoryHealthSummary) RestockPriority() []Product {
	out := make([]Product, 0, len(s.OutOfStock)+len(s.LowStock))
	out = append(out, s.OutOfStock...)
	return append(out, s.LowStock...)
}

// TopCategories devuelve a lo sumo n categorías (n ≤ 0 = todas).
func (s InventoryHealthSummary) TopCategories(n int) []CategoryValue {
	if n <= 0 || n >= len(s.Categories) {
		return s.Categories
	}
	return s.Categories[:n]
}

func healthPercent(healthy, total int) int {
	if total == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(healthy)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart())
}
