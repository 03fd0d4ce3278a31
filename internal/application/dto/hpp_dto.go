package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialLineDTO línea de material: Price es el costo total de la línea para el lote.
type MaterialLineDTO struct {
	Name  string     `json:"name" validate:"max=200"`
	Unit  string     `json:"unit" validate:"max=20"`
	Price FlexNumber `json:"price"`
}

// HPPCalculationRequest entrada de la calculadora de HPP.
type HPPCalculationRequest struct {
	ProductName  string            `json:"product_name" validate:"omitempty,max=200"`
	Materials    []MaterialLineDTO `json:"materials" validate:"max=200,dive"`
	LaborCost    FlexNumber        `json:"labor_cost"`
	OverheadCost FlexNumber        `json:"overhead_cost"`
	Quantity     FlexNumber        `json:"quantity"`
	TargetMargin SignedFlexNumber  `json:"target_margin"`
	Notes        string            `json:"notes" validate:"omitempty,max=2000"`
	WithAI       bool              `json:"with_ai"`
}

// CostBreakdownDTO desglose de costos del lote.
type CostBreakdownDTO struct {
	Materials      []MaterialLineResult `json:"materials"`
	MaterialsTotal decimal.Decimal      `json:"materials_total"`
	LaborCost      decimal.Decimal      `json:"labor_cost"`
	OverheadCost   decimal.Decimal      `json:"overhead_cost"`
	TotalCost      decimal.Decimal      `json:"total_cost"`
	Quantity       decimal.Decimal      `json:"quantity"`
	UnitCost       decimal.Decimal      `json:"unit_cost"`
}

// MaterialLineResult línea de material normalizada.
type MaterialLineResult struct {
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Price decimal.Decimal `json:"price"`
}

// HPPCalculationResponse resultado de la calculadora. AIError se informa sin fallar la petición.
type HPPCalculationResponse struct {
	ProductName string           `json:"product_name"`
	Notes       string           `json:"notes,omitempty"`
	Breakdown   CostBreakdownDTO `json:"breakdown"`
	Pricing     PriceDTO         `json:"pricing"`
	Ladder      []PriceDTO       `json:"ladder"`
	AIAnalysis  string           `json:"ai_analysis,omitempty"`
	AIError     string           `json:"ai_error,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}
