package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// MaterialHandler maneja las materias primas y su reposición.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                     true  "ID del negocio"
// @Param        body        body  dto.CreateMaterialRequest  true  "datos de la materia prima"
// @Success      201  {object}  dto.MaterialResponse
// @Router       /api/businesses/{businessID}/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar materias primas
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        businessID  path   string  true   "ID del negocio"
// @Param        q           query  string  false  "búsqueda por nombre"
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/businesses/{businessID}/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener materia prima
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID de la materia prima"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/materials/{id} [get]
func (h *MaterialHandler) Get(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                     true  "ID del negocio"
// @Param        id          path  string                     true  "ID de la materia prima"
// @Param        body        body  dto.UpdateMaterialRequest  true  "campos a modificar"
// @Success      200  {object}  dto.MaterialResponse
// @Router       /api/businesses/{businessID}/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateMaterialRequest
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
// @Summary      Eliminar materia prima
// @Tags         materials
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID de la materia prima"
// @Success      204
// @Router       /api/businesses/{businessID}/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restock godoc
// @Summary      Reponer stock de una materia prima
// @Description  Suma la cantidad al stock, recalcula el costo promedio ponderado y registra
//               una transacción de tipo restock por cantidad × precio unitario.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string              true  "ID del negocio"
// @Param        id          path  string              true  "ID de la materia prima"
// @Param        body        body  dto.RestockRequest  true  "quantity > 0, unit_price"
// @Success      200  {object}  dto.RestockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/materials/{id}/restock [post]
func (h *MaterialHandler) Restock(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.RestockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Restock(c.UserContext(), GetBusinessID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de salud del stock de materias primas
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.MaterialSummaryResponse
// @Router       /api/businesses/{businessID}/materials/summary [get]
func (h *MaterialHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
