package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para registrar una materia prima.
type CreateMaterialRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	Category     string     `json:"category" validate:"omitempty,max=100"`
	Unit         string     `json:"unit" validate:"required,max=20"`
	Stock        FlexNumber `json:"stock"`
	PricePerUnit FlexNumber `json:"price_per_unit"`
}

// UpdateMaterialRequest entrada para actualizar una materia prima (campos opcionales).
type UpdateMaterialRequest struct {
	Name         *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string     `json:"category" validate:"omitempty,max=100"`
	Unit         *string     `json:"unit" validate:"omitempty,min=1,max=20"`
	Stock        *FlexNumber `json:"stock"`
	PricePerUnit *FlexNumber `json:"price_per_unit"`
}

// RestockRequest entrada para reponer stock a un precio unitario de compra.
type RestockRequest struct {
	Quantity    FlexNumber `json:"quantity"`
	UnitPrice   FlexNumber `json:"unit_price"`
	Description string     `json:"description" validate:"omitempty,max=300"`
}

// MaterialResponse salida de una materia prima.
type MaterialResponse struct {
	ID           string          `json:"id"`
	BusinessID   string          `json:"business_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	Stock        decimal.Decimal `json:"stock"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalValue   decimal.Decimal `json:"total_value"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RestockResponse material actualizado y transacción registrada.
type RestockResponse struct {
	Material    MaterialResponse    `json:"material"`
	Transaction TransactionResponse `json:"transaction"`
}

// MaterialSummaryResponse salud del stock de materias primas.
type MaterialSummaryResponse struct {
	TotalValue         decimal.Decimal    `json:"total_value"`
	StockHealthPercent int                `json:"stock_health_percent"`
	OutOfStockCount    int                `json:"out_of_stock_count"`
	LowStockCount      int                `json:"low_stock_count"`
	HealthyCount       int                `json:"healthy_count"`
	Categories         []CategoryValueDTO `json:"categories"`
	RestockPriority    []StockItemDTO     `json:"restock_priority"`
}
