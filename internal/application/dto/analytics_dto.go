package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryValueDTO valor de inventario agrupado por categoría.
type CategoryValueDTO struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// StockItemDTO elemento de la lista de reposición.
type StockItemDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    decimal.Decimal `json:"stock"`
	Status   string          `json:"status"` // out_of_stock | low_stock
}

// OverviewResponse resumen del negocio: salud del inventario y finanzas recientes.
type OverviewResponse struct {
	BusinessID         string                `json:"business_id"`
	TotalProducts      int                   `json:"total_products"`
	TotalAssetValue    decimal.Decimal       `json:"total_asset_value"`
	PotentialRevenue   decimal.Decimal       `json:"potential_revenue"`
	StockHealthPercent int                   `json:"stock_health_percent"`
	OutOfStockCount    int                   `json:"out_of_stock_count"`
	LowStockCount      int                   `json:"low_stock_count"`
	HealthyCount       int                   `json:"healthy_count"`
	LowStockThreshold  decimal.Decimal       `json:"low_stock_threshold"`
	Categories         []CategoryValueDTO    `json:"categories"`
	TopCategories      []CategoryValueDTO    `json:"top_categories"`
	RestockPriority    []StockItemDTO        `json:"restock_priority"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	Finance            FinancialSummaryDTO   `json:"finance"`
}

// FinancialSummaryDTO ingresos, gastos y utilidad a partir de las transacciones.
type FinancialSummaryDTO struct {
	Revenue             decimal.Decimal `json:"revenue"`
	Expenses            decimal.Decimal `json:"expenses"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	ProfitMarginPercent decimal.Decimal `json:"profit_margin_percent"`
	TransactionCount    int             `json:"transaction_count"`
}

// FinancialReportResponse reporte financiero del negocio.
type FinancialReportResponse struct {
	BusinessID     string              `json:"business_id"`
	Summary        FinancialSummaryDTO `json:"summary"`
	InventoryValue decimal.Decimal     `json:"inventory_value"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

// ProductPerformanceDTO rendimiento de un producto. MarginPercent es null si no está definido.
type ProductPerformanceDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	HPP             decimal.Decimal  `json:"hpp"`
	SellingPrice    decimal.Decimal  `json:"selling_price"`
	Stock           decimal.Decimal  `json:"stock"`
	MarginPercent   *decimal.Decimal `json:"margin_percent"`
	PotentialProfit decimal.Decimal  `json:"potential_profit"`
}

// ProductPerformanceResponse ranking de productos por margen.
type ProductPerformanceResponse struct {
	BusinessID string                  `json:"business_id"`
	Items      []ProductPerformanceDTO `json:"items"`
}

// InventoryReportData datos de entrada del reporte PDF de inventario.
type InventoryReportData struct {
	BusinessName string
	Overview     OverviewResponse
	Products     []ProductResponse
	GeneratedAt  time.Time
}
