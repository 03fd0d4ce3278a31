package analytics

import (
	"context"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// GetFinancialReport calcula ingresos, gastos, utilidad y el valor del inventario.
func (uc *OverviewUseCase) GetFinancialReport(ctx context.Context, businessID string) (*dto.FinancialReportResponse, error) {
	snap, err := uc.load(ctx, businessID)
	if err != nil {
		return nil, err
	}
	s := pricing.SummarizeInventoryWithThreshold(entity.ProductSnapshots(snap.products), uc.opts.LowStockThreshold)
	return &dto.FinancialReportResponse{
		BusinessID:     businessID,
		Summary:        toFinancialSummaryDTO(pricing.SummarizeLedger(entity.LedgerEntries(snap.transactions))),
		InventoryValue: s.TotalAssetValue.Round(2),
		GeneratedAt:    uc.now(),
	}, nil
}

// GetProductPerformance ordena los productos por margen descendente (indefinidos al final) y
// devuelve los primeros n; n ≤ 0 usa TopN.
func (uc *OverviewUseCase) GetProductPerformance(ctx context.Context, businessID string, n int) (*dto.ProductPerformanceResponse, error) {
	if n <= 0 {
		n = uc.opts.TopN
	}
	list, err := uc.products.List(ctx, businessID, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	ranked := pricing.RankByMargin(entity.ProductSnapshots(list), n)
	items := make([]dto.ProductPerformanceDTO, 0, len(ranked))
	for _, r := range ranked {
		item := dto.ProductPerformanceDTO{
			ID:              r.Product.ID,
			Name:            r.Product.Name,
			Category:        r.Product.Category,
			HPP:             r.Product.CostPerUnit,
			SellingPrice:    r.Product.SellingPrice,
			Stock:           r.Product.StockQuantity,
			PotentialProfit: r.PotentialProfit.Round(2),
		}
		if r.MarginDefined {
			m := r.MarginPercent.Round(2)
			item.MarginPercent = &m
		}
		items = append(items, item)
	}
	return &dto.ProductPerformanceResponse{BusinessID: businessID, Items: items}, nil
}
