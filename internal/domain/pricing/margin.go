package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDegenerateMargin indica un margen objetivo ≥ 100%: no existe precio de venta finito.
var ErrDegenerateMargin = errors.New("margen objetivo debe ser menor a 100%")

var hundred = decimal.NewFromInt(100)

// RecommendedMargins márgenes sugeridos por la calculadora de HPP.
var RecommendedMargins = []decimal.Decimal{
	decimal.NewFromInt(25),
	decimal.NewFromInt(30),
	decimal.NewFromInt(40),
	decimal.NewFromInt(50),
}

// PricingResult resultado de aplicar un margen objetivo a un costo unitario.
// Si Degenerate es true, SellingPrice y ProfitPerUnit no tienen significado.
type PricingResult struct {
	UnitCost            decimal.Decimal
	TargetMarginPercent decimal.Decimal
	SellingPrice        decimal.Decimal
	ProfitPerUnit       decimal.Decimal
	Degenerate          bool
}

// ComputeSellingPrice calcula unitCost / (1 - margin/100).
// Devuelve ErrDegenerateMargin si margin ≥ 100.
func ComputeSellingPrice(unitCost, marginPercent decimal.Decimal) (decimal.Decimal, error) {
	if marginPercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, ErrDegenerateMargin
	}
	return unitCost.Div(one.Sub(marginPercent.Div(hundred))), nil
}

// Price construye el PricingResult completo, con ProfitPerUnit = precio - costo.
func Price(unitCost, marginPercent decimal.Decimal) PricingResult {
	res := PricingResult{UnitCost: unitCost, TargetMarginPercent: marginPercent}
	price, err := ComputeSellingPrice(unitCost, marginPercent)
	if err != nil {
		res.Degenerate = true
		return res
	}
	res.SellingPrice = price
	res.ProfitPerUnit = price.Sub(unitCost)
	return res
}

// PriceLadder aplica Price para cada margen, en el mismo orden.
func PriceLadder(unitCost decimal.Decimal, margins []decimal.Decimal) []PricingResult {
	out := make([]PricingResult, 0, len(margins))
	for _, m := range margins {
		out = append(out, Price(unitCost, m))
	}
	return out
}

// ComputeMarginPercent calcula ((precio - costo) / precio) * 100.
// ok es false cuando el precio de venta es 0 (margen indefinido).
func ComputeMarginPercent(unitCost, sellingPrice decimal.Decimal) (margin decimal.Decimal, ok bool) {
	if sellingPrice.IsZero() {
		return decimal.Zero, false
	}
	return sellingPrice.Sub(unitCost).Div(sellingPrice).Mul(hundred), true
}
