package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/ports"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// MaterialUseCase casos de uso del stock de materias primas.
type MaterialUseCase struct {
	repo      repository.MaterialRepository
	txRunner  ports.TxRunner
	threshold decimal.Decimal
	topN      int
}

// NewMaterialUseCase construye el caso de uso. threshold es el umbral de stock bajo.
func NewMaterialUseCase(repo repository.MaterialRepository, txRunner ports.TxRunner, threshold decimal.Decimal, topN int) *MaterialUseCase {
	if !threshold.IsPositive() {
		threshold = pricing.DefaultLowStockThreshold
	}
	return &MaterialUseCase{repo: repo, txRunner: txRunner, threshold: threshold, topN: topN}
}

// Create registra una materia prima.
func (uc *MaterialUseCase) Create(ctx context.Context, businessID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Material{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		Name:         name,
		Category:     strings.TrimSpace(in.Category),
		Unit:         unit,
		Stock:        in.Stock.Decimal,
		PricePerUnit: in.PricePerUnit.Decimal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := storedAmounts(&m.Stock, &m.PricePerUnit); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID obtiene una materia prima del negocio.
func (uc *MaterialUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(m), nil
}

// Update actualiza los campos enviados.
func (uc *MaterialUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if m.Name = strings.TrimSpace(*in.Name); m.Name == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Category != nil {
		m.Category = strings.TrimSpace(*in.Category)
	}
	if in.Unit != nil {
		if m.Unit = strings.TrimSpace(*in.Unit); m.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Stock != nil {
		m.Stock = in.Stock.Decimal
	}
	if in.PricePerUnit != nil {
		m.PricePerUnit = in.PricePerUnit.Decimal
	}
	if err := storedAmounts(&m.Stock, &m.PricePerUnit); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Delete elimina una materia prima.
func (uc *MaterialUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.Delete(ctx, businessID, id)
}

// List lista materias primas con búsqueda opcional.
func (uc *MaterialUseCase) List(ctx context.Context, businessID, query string) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.List(ctx, businessID, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// Restock suma cantidad al stock, recalcula el precio por unidad como promedio ponderado y
// registra una transacción "restock" por el monto de la compra, todo en una misma transacción de BD.
func (uc *MaterialUseCase) Restock(ctx context.Context, businessID, id string, in dto.RestockRequest) (*dto.RestockResponse, error) {
	qty := in.Quantity.Decimal
	unitPrice := in.UnitPrice.Decimal
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var out dto.RestockResponse
	err := uc.txRunner.RunRestock(ctx, func(materials repository.MaterialRepository, transactions repository.TransactionRepository) error {
		m, err := materials.GetForUpdate(ctx, businessID, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		m.PricePerUnit = pricing.WeightedAverageCost(m.Stock, m.PricePerUnit, qty, unitPrice)
		m.Stock = m.Stock.Add(qty)
		m.UpdatedAt = now
		amount := qty.Mul(unitPrice).Neg()
		if err := storedAmounts(&m.PricePerUnit, &m.Stock, &amount); err != nil {
			return err
		}
		if err := materials.Update(ctx, m); err != nil {
			return err
		}

		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			desc = fmt.Sprintf("Restock %s (%s %s)", m.Name, qty.String(), m.Unit)
		}
		t := &entity.Transaction{
			ID:          uuid.New().String(),
			BusinessID:  businessID,
			Type:        entity.TransactionRestock,
			Description: desc,
			Amount:      amount,
			Date:        now,
			CreatedAt:   now,
		}
		if err := transactions.Create(ctx, t); err != nil {
			return err
		}
		out.Material = *toMaterialResponse(m)
		out.Transaction = *ToTransactionResponse(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary resume la salud del stock de materias primas con el mismo motor que los productos.
func (uc *MaterialUseCase) Summary(ctx context.Context, businessID string) (*dto.MaterialSummaryResponse, error) {
	list, err := uc.repo.List(ctx, businessID, "")
	if err != nil {
		return nil, err
	}
	s := pricing.SummarizeInventoryWithThreshold(entity.MaterialSnapshots(list), uc.threshold)
	return &dto.MaterialSummaryResponse{
		TotalValue:         s.TotalAssetValue,
		StockHealthPercent: s.StockHealthPercent,
		OutOfStockCount:    len(s.OutOfStock),
		LowStockCount:      len(s.LowStock),
		HealthyCount:       len(s.Healthy),
		Categories:         CategoryValues(s.Categories),
		RestockPriority:    RestockItems(s, uc.topN),
	}, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           m.ID,
		BusinessID:   m.BusinessID,
		Name:         m.Name,
		Category:     m.Category,
		Unit:         m.Unit,
		Stock:        m.Stock,
		PricePerUnit: m.PricePerUnit,
		TotalValue:   m.Snapshot().AssetValue(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
