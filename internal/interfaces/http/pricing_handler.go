package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/pricing"
)

// PricingHandler expone la calculadora de HPP y las herramientas de precio.
type PricingHandler struct {
	uc *pricing.CalculatorUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.CalculatorUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// SellingPrice godoc
// @Summary      Precio de venta para un margen objetivo
// @Description  precio = costo / (1 - margen/100). Un margen >= 100 no tiene precio posible.
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellingPriceRequest  true  "unit_cost, target_margin"
// @Success      200  {object}  dto.PriceDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/tools/pricing/selling-price [post]
func (h *PricingHandler) SellingPrice(c *fiber.Ctx) error {
	var in dto.SellingPriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.SellingPrice(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Margin godoc
// @Summary      Margen de un producto existente
// @Description  margen = (precio - costo) / precio × 100; indefinido si el precio es 0.
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarginRequest  true  "unit_cost, selling_price"
// @Success      200  {object}  dto.MarginResponse
// @Router       /api/tools/pricing/margin [post]
func (h *PricingHandler) Margin(c *fiber.Ctx) error {
	var in dto.MarginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return c.JSON(h.uc.Margin(in))
}

// Calculate godoc
// @Summary      Calcular HPP y precio recomendado
// @Description  Desglose de costos por unidad, precio al margen objetivo y escalera 25/30/40/50 %.
//               Con with_ai=true agrega un análisis del asistente; si el asistente falla se informa en ai_error.
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HPPCalculationRequest  true  "materiales y costos"
// @Success      200  {object}  dto.HPPCalculationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/tools/hpp/calculate [post]
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	var in dto.HPPCalculationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Calculate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Descargar el cálculo de HPP en PDF
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.HPPCalculationRequest  true  "materiales y costos"
// @Success      200  {file}  file
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/tools/hpp/report.pdf [post]
func (h *PricingHandler) ReportPDF(c *fiber.Ctx) error {
	var in dto.HPPCalculationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	doc, out, err := h.uc.ReportPDF(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(hppFilename(out.ProductName, out.GeneratedAt))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// hppFilename arma HPP_<producto>_<YYYY-MM-DD>.pdf con un nombre seguro para cabeceras.
func hppFilename(product string, at time.Time) string {
	name := strings.Trim(unsafeFilenameChars.ReplaceAllString(product, "_"), "_")
	if name == "" {
		name = "Produk"
	}
	return fmt.Sprintf("HPP_%s_%s.pdf", name, at.Format("2006-01-02"))
}
