package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/report"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// ProductHandler maneja los productos de un negocio.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	reports *report.ReportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, reports *report.ReportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                    true  "ID del negocio"
// @Param        body        body  dto.CreateProductRequest  true  "hpp, selling_price y stock aceptan número o texto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), GetBusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos (búsqueda por nombre y categoría)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        businessID  path   string  true   "ID del negocio"
// @Param        q           query  string  false  "búsqueda por nombre"
// @Param        category    query  string  false  "categoría exacta"
// @Param        limit       query  int     false  "máximo 100"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/businesses/{businessID}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProductListRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                    true  "ID del negocio"
// @Param        id          path  string                    true  "ID del producto"
// @Param        body        body  dto.UpdateProductRequest  true  "campos a modificar"
// @Success      200  {object}  dto.ProductResponse
// @Router       /api/businesses/{businessID}/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateProductRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetBusinessID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID del producto"
// @Success      204
// @Router       /api/businesses/{businessID}/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV godoc
// @Summary      Exportar productos a CSV
// @Description  Columnas: Product Name, Category, HPP (Rp), Selling Price (Rp), Stock, Margin (%).
// @Tags         products
// @Security     Bearer
// @Produce      text/csv
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {file}  file
// @Router       /api/businesses/{businessID}/products/export.csv [get]
func (h *ProductHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.reports.ProductsCSV(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, out)
}

func sendExport(c *fiber.Ctx, e *report.Export) error {
	c.Attachment(e.Filename)
	c.Set(fiber.HeaderContentType, e.ContentType)
	return c.Send(e.Content)
}
