package pricing

import "github.com/shopspring/decimal"

// MaterialLine es una línea de material de una corrida de producción.
// Price es el aporte total de la línea al lote (no precio unitario).
type MaterialLine struct {
	Name  string
	Unit  string
	Price decimal.Decimal
}

// CostBreakdown desglose de costos de una corrida de producción.
type CostBreakdown struct {
	MaterialsTotal decimal.Decimal
	LaborCost      decimal.Decimal
	OverheadCost   decimal.Decimal
	Quantity       decimal.Decimal // cantidad efectiva usada como divisor (≥ 1)
	UnitCost       decimal.Decimal // HPP
}

// TotalCost costo total del lote (materiales + mano de obra + overhead).
func (b CostBreakdown) TotalCost() decimal.Decimal {
	return b.MaterialsTotal.Add(b.LaborCost).Add(b.OverheadCost)
}

var one = decimal.NewFromInt(1)

// MaterialsTotal suma el precio de cada línea. No multiplica por cantidad.
func MaterialsTotal(lines []MaterialLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price)
	}
	return total
}

// ComputeUnitCost calcula el HPP: (materiales + mano de obra + overhead) / max(cantidad, 1).
// Una corrida de 0 unidades se trata como 1 unidad.
func ComputeUnitCost(materialsCost, laborCost, overheadCost, quantity decimal.Decimal) decimal.Decimal {
	return materialsCost.Add(laborCost).Add(overheadCost).Div(clampQuantity(quantity))
}

// Breakdown arma el CostBreakdown completo a partir de las líneas de material.
func Breakdown(lines []MaterialLine, laborCost, overheadCost, quantity decimal.Decimal) CostBreakdown {
	materials := MaterialsTotal(lines)
	q := clampQuantity(quantity)
	return CostBreakdown{
		MaterialsTotal: materials,
		LaborCost:      laborCost,
		OverheadCost:   overheadCost,
		Quantity:       q,
		UnitCost:       ComputeUnitCost(materials, laborCost, overheadCost, q),
	}
}

func clampQuantity(q decimal.Decimal) decimal.Decimal {
	if q.LessThan(one) {
		return one
	}
	return q
}
