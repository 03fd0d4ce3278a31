package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/analytics"
	"github.com/bizness/bizness-api/internal/application/report"
)

// AnalyticsHandler expone el resumen del negocio y sus reportes.
type AnalyticsHandler struct {
	overview *analytics.OverviewUseCase
	reports  *report.ReportUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(overview *analytics.OverviewUseCase, reports *report.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{overview: overview, reports: reports}
}

// Overview godoc
// @Summary      Resumen del negocio
// @Description  Valor del inventario, ingreso potencial, salud del stock, categorías,
//               prioridad de reposición y finanzas.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.OverviewResponse
// @Router       /api/businesses/{businessID}/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.overview.GetOverview(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FinancialReport godoc
// @Summary      Reporte financiero (ingresos, gastos, utilidad neta)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.FinancialReportResponse
// @Router       /api/businesses/{businessID}/reports/financial [get]
func (h *AnalyticsHandler) FinancialReport(c *fiber.Ctx) error {
	out, err := h.overview.GetFinancialReport(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProductPerformance godoc
// @Summary      Productos ordenados por margen
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        businessID  path   string  true   "ID del negocio"
// @Param        limit       query  int     false  "tamaño del ranking"
// @Success      200  {object}  dto.ProductPerformanceResponse
// @Router       /api/businesses/{businessID}/reports/products [get]
func (h *AnalyticsHandler) ProductPerformance(c *fiber.Ctx) error {
	out, err := h.overview.GetProductPerformance(c.UserContext(), GetBusinessID(c), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {file}  file
// @Router       /api/businesses/{businessID}/reports/inventory.pdf [get]
func (h *AnalyticsHandler) InventoryPDF(c *fiber.Ctx) error {
	out, err := h.reports.InventoryPDF(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, out)
}
