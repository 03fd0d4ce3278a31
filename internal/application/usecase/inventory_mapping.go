package usecase

import (
	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// Estados de la lista de reposición.
const (
	StockStatusOut = "out_of_stock"
	StockStatusLow = "low_stock"
)

// CategoryValues mapea el desglose por categoría conservando el orden.
func CategoryValues(list []pricing.CategoryValue) []dto.CategoryValueDTO {
	out := make([]dto.CategoryValueDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryValueDTO{Category: c.Category, Value: c.Value})
	}
	return out
}

// RestockItems devuelve la lista priorizada de reposición (sin stock primero) truncada a n; n ≤ 0 = todas.
func RestockItems(s pricing.InventoryHealthSummary, n int) []dto.StockItemDTO {
	priority := s.RestockPriority()
	if n > 0 && len(priority) > n {
		priority = priority[:n]
	}
	out := make([]dto.StockItemDTO, 0, len(priority))
	for i, p := range priority {
		status := StockStatusLow
		if i < len(s.OutOfStock) {
			status = StockStatusOut
		}
		out = append(out, stockItem(p, status))
	}
	return out
}

func stockItem(p pricing.Product, status string) dto.StockItemDTO {
	return dto.StockItemDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Stock:    p.StockQuantity,
		Status:   status,
	}
}
