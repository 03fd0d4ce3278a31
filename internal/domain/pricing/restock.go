package pricing

import "github.com/shopspring/decimal"

// WeightedAverageCost costo promedio ponderado tras una reposición:
// ((stock * costo) + (cantEntrada * costoEntrada)) / (stock + cantEntrada).
// Devuelve 0 si el stock resultante no es positivo.
func WeightedAverageCost(stock, cost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := stock.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(cost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}
