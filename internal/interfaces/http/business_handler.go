package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// BusinessHandler maneja los negocios (espacios de trabajo) del usuario.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Crear negocio
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "datos del negocio"
// @Success      201  {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar negocios del usuario
// @Tags         businesses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BusinessResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener negocio
// @Tags         businesses
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar negocio
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                     true  "ID del negocio"
// @Param        body        body  dto.UpdateBusinessRequest  true  "campos a modificar"
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/businesses/{businessID} [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar negocio y todos sus datos
// @Tags         businesses
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      204
// @Router       /api/businesses/{businessID} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
