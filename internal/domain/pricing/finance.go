package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// EntrySale tipo de movimiento que cuenta como ingreso; cualquier otro es gasto.
const EntrySale = "sale"

// LedgerEntry movimiento financiero mínimo que necesita el resumen.
type LedgerEntry struct {
	Type   string
	Amount decimal.Decimal
}

// FinancialSummary ingresos, gastos y utilidad de un conjunto de movimientos.
type FinancialSummary struct {
	Revenue             decimal.Decimal
	Expenses            decimal.Decimal
	NetProfit           decimal.Decimal
	ProfitMarginPercent decimal.Decimal // 0 si no hay ingresos
	Transactions        int
}

// SummarizeLedger suma ventas como ingresos y el valor absoluto del resto como gastos.
func SummarizeLedger(entries []LedgerEntry) FinancialSummary {
	revenue := decimal.Zero
	other := decimal.Zero
	for _, e := range entries {
		if e.Type == EntrySale {
			revenue = revenue.Add(e.Amount)
		} else {
			other = other.Add(e.Amount)
		}
	}
	expenses := other.Abs()
	net := revenue.Sub(expenses)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = net.Div(revenue).Mul(hundred)
	}
	return FinancialSummary{
		Revenue:             revenue,
		Expenses:            expenses,
		NetProfit:           net,
		ProfitMarginPercent: margin,
		Transactions:        len(entries),
	}
}

// ProductPerformance margen y utilidad potencial de un producto.
type ProductPerformance struct {
	Product         Product
	MarginPercent   decimal.Decimal
	MarginDefined   bool
	PotentialProfit decimal.Decimal // (precio - costo) * stock
}

// RankByMargin ordena por margen descendente; los márgenes indefinidos van al final.
// Empates conservan el orden de entrada. n ≤ 0 devuelve todos.
func RankByMargin(products []Product, n int) []ProductPerformance {
	out := make([]ProductPerformance, 0, len(products))
	for _, p := range products {
		m, ok := p.MarginPercent()
		out = append(out, ProductPerformance{
			Product:         p,
			MarginPercent:   m,
			MarginDefined:   ok,
			PotentialProfit: p.SellingPrice.Sub(p.CostPerUnit).Mul(p.StockQuantity),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MarginDefined != b.MarginDefined {
			return a.MarginDefined
		}
		return a.MarginPercent.GreaterThan(b.MarginPercent)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
