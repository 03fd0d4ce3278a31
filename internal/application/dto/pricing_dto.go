package dto

import "github.com/shopspring/decimal"

// Estados del margen objetivo en respuestas de precio.
const (
	MarginStatusOK         = "ok"
	MarginStatusDegenerate = "degenerate"
)

// SellingPriceRequest entrada para recomendar un precio de venta.
type SellingPriceRequest struct {
	UnitCost     FlexNumber       `json:"unit_cost"`
	TargetMargin SignedFlexNumber `json:"target_margin"`
}

// PriceDTO precio recomendado para un margen. SellingPrice y ProfitPerUnit son null
// cuando el margen es degenerado (≥ 100%).
type PriceDTO struct {
	UnitCost            decimal.Decimal  `json:"unit_cost"`
	TargetMarginPercent decimal.Decimal  `json:"target_margin_percent"`
	SellingPrice        *decimal.Decimal `json:"selling_price"`
	ProfitPerUnit       *decimal.Decimal `json:"profit_per_unit"`
	MarginStatus        string           `json:"margin_status"`
}

// MarginRequest entrada para calcular el margen de un producto existente.
type MarginRequest struct {
	UnitCost     FlexNumber `json:"unit_cost"`
	SellingPrice FlexNumber `json:"selling_price"`
}

// MarginResponse margen calculado; MarginPercent es null si el precio de venta es 0.
type MarginResponse struct {
	UnitCost      decimal.Decimal  `json:"unit_cost"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	MarginPercent *decimal.Decimal `json:"margin_percent"`
	Defined       bool             `json:"defined"`
}
