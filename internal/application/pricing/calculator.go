// Package pricing expone la calculadora de HPP y las herramientas de precio sobre el motor
// de dominio, con análisis opcional por IA y exportación a PDF.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/ports"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/pkg/logger"
	"github.com/bizness/bizness-api/pkg/money"
)

// Mensajes de AIError; el detalle del proveedor solo va al log.
const (
	AIErrUnavailable = "layanan AI tidak tersedia"
	AIErrTimeout     = "layanan AI tidak merespons"
	AIErrFailed      = "layanan AI gagal"
)

// CalculatorUseCase calcula HPP y precio recomendado de un lote de producción.
type CalculatorUseCase struct {
	llm     ports.LLMService
	pdf     ports.ReportPDFGenerator
	timeout time.Duration
	log     *logger.Logger
	now     func() time.Time
}

// NewCalculatorUseCase construye el caso de uso. llm y pdf pueden ser nil si no se usan.
func NewCalculatorUseCase(llm ports.LLMService, pdf ports.ReportPDFGenerator, timeout time.Duration, log *logger.Logger) *CalculatorUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CalculatorUseCase{
		llm:     llm,
		pdf:     pdf,
		timeout: timeout,
		log:     log.Component("hpp_calculator"),
		now:     time.Now,
	}
}

// Calculate arma el desglose de costos, el precio al margen objetivo y la escalera de márgenes
// recomendados. El análisis de IA es opcional: si falla se informa en AIError y el cálculo se
// devuelve igual.
func (uc *CalculatorUseCase) Calculate(ctx context.Context, in dto.HPPCalculationRequest) (*dto.HPPCalculationResponse, error) {
	lines := make([]pricing.MaterialLine, 0, len(in.Materials))
	for _, m := range in.Materials {
		lines = append(lines, pricing.MaterialLine{
			Name:  strings.TrimSpace(m.Name),
			Unit:  strings.TrimSpace(m.Unit),
			Price: m.Price.Decimal,
		})
	}
	b := pricing.Breakdown(lines, in.LaborCost.Decimal, in.OverheadCost.Decimal, in.Quantity.Decimal)

	resp := &dto.HPPCalculationResponse{
		ProductName: strings.TrimSpace(in.ProductName),
		Notes:       strings.TrimSpace(in.Notes),
		Breakdown:   toBreakdownDTO(lines, b),
		Pricing:     ToPriceDTO(pricing.Price(b.UnitCost, in.TargetMargin.Decimal)),
		GeneratedAt: uc.now(),
	}
	for _, r := range pricing.PriceLadder(b.UnitCost, pricing.RecommendedMargins) {
		resp.Ladder = append(resp.Ladder, ToPriceDTO(r))
	}

	if in.WithAI {
		uc.analyze(ctx, resp)
	}
	return resp, nil
}

// ReportPDF calcula y genera el PDF "Laporan HPP & Rekomendasi Harga".
func (uc *CalculatorUseCase) ReportPDF(ctx context.Context, in dto.HPPCalculationRequest) ([]byte, *dto.HPPCalculationResponse, error) {
	if uc.pdf == nil {
		return nil, nil, fmt.Errorf("hpp: generador PDF no configurado")
	}
	resp, err := uc.Calculate(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	doc, err := uc.pdf.HPPReport(resp)
	if err != nil {
		return nil, nil, fmt.Errorf("hpp: generar PDF: %w", err)
	}
	return doc, resp, nil
}

func (uc *CalculatorUseCase) analyze(ctx context.Context, resp *dto.HPPCalculationResponse) {
	if uc.llm == nil {
		resp.AIError = AIErrUnavailable
		return
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.AnalyzeHPP(ctx, BuildAnalysisPrompt(resp))
	if err != nil {
		uc.log.Warn().Err(err).Str("product", resp.ProductName).Msg("análisis IA de HPP falló")
		resp.AIError = aiErrorMessage(err)
		return
	}
	resp.AIAnalysis = strings.TrimSpace(text)
}

func aiErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAIUnavailable):
		return AIErrUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return AIErrTimeout
	default:
		return AIErrFailed
	}
}

// BuildAnalysisPrompt describe el cálculo con el formato de entrada que espera el asistente de HPP.
func BuildAnalysisPrompt(resp *dto.HPPCalculationResponse) string {
	var sb strings.Builder
	name := resp.ProductName
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(&sb, "nama produk = %s\n\n", name)
	sb.WriteString("bahan:\n")
	for _, m := range resp.Breakdown.Materials {
		fmt.Fprintf(&sb, "- nama bahan = %s\n", m.Name)
		fmt.Fprintf(&sb, "- satuan = %s\n", m.Unit)
		fmt.Fprintf(&sb, "- harga beli = %s\n", m.Price.StringFixed(0))
	}
	sb.WriteString("\nbiaya operasional:\n")
	fmt.Fprintf(&sb, "biaya tenaga kerja = %s\n", resp.Breakdown.LaborCost.StringFixed(0))
	fmt.Fprintf(&sb, "biaya overhead = %s\n\n", resp.Breakdown.OverheadCost.StringFixed(0))
	fmt.Fprintf(&sb, "jumlah produk atau unit = %s\n\n", resp.Breakdown.Quantity.String())

	desc := fmt.Sprintf("HPP per unit terhitung %s, target margin %s",
		money.FormatRupiah(resp.Breakdown.UnitCost), money.FormatPercent(resp.Pricing.TargetMarginPercent))
	if resp.Pricing.SellingPrice != nil {
		desc += fmt.Sprintf(", harga jual %s", money.FormatRupiah(*resp.Pricing.SellingPrice))
	} else {
		desc += ", harga jual tidak terdefinisi karena margin 100% atau lebih"
	}
	if resp.Notes != "" {
		desc += ". " + resp.Notes
	}
	fmt.Fprintf(&sb, "deskripsi tambahan = %s\n", desc)
	return sb.String()
}

func toBreakdownDTO(lines []pricing.MaterialLine, b pricing.CostBreakdown) dto.CostBreakdownDTO {
	materials := make([]dto.MaterialLineResult, 0, len(lines))
	for _, l := range lines {
		materials = append(materials, dto.MaterialLineResult{Name: l.Name, Unit: l.Unit, Price: l.Price})
	}
	return dto.CostBreakdownDTO{
		Materials:      materials,
		MaterialsTotal: b.MaterialsTotal,
		LaborCost:      b.LaborCost,
		OverheadCost:   b.OverheadCost,
		TotalCost:      b.TotalCost(),
		Quantity:       b.Quantity,
		UnitCost:       b.UnitCost.Round(2),
	}
}

// ToPriceDTO mapea un PricingResult; el margen degenerado se expresa con precio null.
func ToPriceDTO(r pricing.PricingResult) dto.PriceDTO {
	out := dto.PriceDTO{
		UnitCost:            r.UnitCost.Round(2),
		TargetMarginPercent: r.TargetMarginPercent,
		MarginStatus:        dto.MarginStatusOK,
	}
	if r.Degenerate {
		out.MarginStatus = dto.MarginStatusDegenerate
		return out
	}
	price := r.SellingPrice.Round(2)
	profit := r.ProfitPerUnit.Round(2)
	out.SellingPrice = &price
	out.ProfitPerUnit = &profit
	return out
}

// roundedPtr redondea a 2 decimales y devuelve un puntero.
func roundedPtr(d decimal.Decimal) *decimal.Decimal {
	d = d.Round(2)
	return &d
}
