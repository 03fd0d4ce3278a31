package pricing

import (
	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// SellingPrice recomienda el precio de venta para un costo y margen objetivo.
// Devuelve pricing.ErrDegenerateMargin si el margen es ≥ 100%.
func (uc *CalculatorUseCase) SellingPrice(in dto.SellingPriceRequest) (*dto.PriceDTO, error) {
	if _, err := pricing.ComputeSellingPrice(in.UnitCost.Decimal, in.TargetMargin.Decimal); err != nil {
		return nil, err
	}
	out := ToPriceDTO(pricing.Price(in.UnitCost.Decimal, in.TargetMargin.Decimal))
	return &out, nil
}

// Margin calcula el margen de un producto existente; indefinido si el precio de venta es 0.
func (uc *CalculatorUseCase) Margin(in dto.MarginRequest) *dto.MarginResponse {
	out := &dto.MarginResponse{
		UnitCost:     in.UnitCost.Decimal,
		SellingPrice: in.SellingPrice.Decimal,
	}
	if m, ok := pricing.ComputeMarginPercent(in.UnitCost.Decimal, in.SellingPrice.Decimal); ok {
		out.MarginPercent = roundedPtr(m)
		out.Defined = true
	}
	return out
}
