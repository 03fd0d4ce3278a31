// Package analytics contiene los casos de uso del resumen del negocio y los reportes
// financieros y de rendimiento de productos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// Options parámetros de los resúmenes.
type Options struct {
	LowStockThreshold decimal.Decimal
	TopN              int // tamaño de las listas resumidas
}

// OverviewUseCase genera el resumen del negocio (salud del inventario + finanzas).
//
// Fuente de datos: ProductRepository y TransactionRepository (lecturas).
// El cálculo lo hace el motor de pricing sobre snapshots en memoria.
type OverviewUseCase struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	opts         Options
	now          func() time.Time
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(products repository.ProductRepository, transactions repository.TransactionRepository, opts Options) *OverviewUseCase {
	if !opts.LowStockThreshold.IsPositive() {
		opts.LowStockThreshold = pricing.DefaultLowStockThreshold
	}
	if opts.TopN <= 0 {
		opts.TopN = 5
	}
	return &OverviewUseCase{products: products, transactions: transactions, opts: opts, now: time.Now}
}

type snapshot struct {
	products     []*entity.Product
	transactions []*entity.Transaction
}

// load consulta productos y transacciones en paralelo (llamadas independientes).
func (uc *OverviewUseCase) load(ctx context.Context, businessID string) (*snapshot, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type transactionsResult struct {
		list []*entity.Transaction
		err  error
	}

	prodCh := make(chan productsResult, 1)
	txCh := make(chan transactionsResult, 1)

	go func() {
		list, err := uc.products.List(ctx, businessID, repository.ProductFilter{})
		prodCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.transactions.ListByBusiness(ctx, businessID, 0)
		txCh <- transactionsResult{list, err}
	}()

	prod := <-prodCh
	txs := <-txCh

	if prod.err != nil {
		return nil, fmt.Errorf("overview: productos: %w", prod.err)
	}
	if txs.err != nil {
		return nil, fmt.Errorf("overview: transacciones: %w", txs.err)
	}
	return &snapshot{products: prod.list, transactions: txs.list}, nil
}

// GetOverview construye el OverviewResponse del negocio.
func (uc *OverviewUseCase) GetOverview(ctx context.Context, businessID string) (*dto.OverviewResponse, error) {
	snap, err := uc.load(ctx, businessID)
	if err != nil {
		return nil, err
	}

	s := pricing.SummarizeInventoryWithThreshold(entity.ProductSnapshots(snap.products), uc.opts.LowStockThreshold)

	recent := snap.transactions
	if len(recent) > uc.opts.TopN {
		recent = recent[:uc.opts.TopN]
	}

	return &dto.OverviewResponse{
		BusinessID:         businessID,
		TotalProducts:      s.Total(),
		TotalAssetValue:    s.TotalAssetValue.Round(2),
		PotentialRevenue:   s.PotentialRevenue.Round(2),
		StockHealthPercent: s.StockHealthPercent,
		OutOfStockCount:    len(s.OutOfStock),
		LowStockCount:      len(s.LowStock),
		HealthyCount:       len(s.Healthy),
		LowStockThreshold:  uc.opts.LowStockThreshold,
		Categories:         usecase.CategoryValues(s.Categories),
		TopCategories:      usecase.CategoryValues(s.TopCategories(uc.opts.TopN)),
		RestockPriority:    usecase.RestockItems(s, uc.opts.TopN),
		RecentTransactions: usecase.TransactionResponses(recent),
		Finance:            toFinancialSummaryDTO(pricing.SummarizeLedger(entity.LedgerEntries(snap.transactions))),
	}, nil
}

func toFinancialSummaryDTO(s pricing.FinancialSummary) dto.FinancialSummaryDTO {
	return dto.FinancialSummaryDTO{
		Revenue:             s.Revenue.Round(2),
		Expenses:            s.Expenses.Round(2),
		NetProfit:           s.NetProfit.Round(2),
		ProfitMarginPercent: s.ProfitMarginPercent.Round(2),
		TransactionCount:    s.Transactions,
	}
}
