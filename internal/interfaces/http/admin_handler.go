package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// AdminHandler expone la gestión de usuarios para administradores.
type AdminHandler struct {
	uc *usecase.UserUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers godoc
// @Summary      Listar usuarios con número de negocios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.AdminUserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := parseQuery(c, &page); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateUserStatus godoc
// @Summary      Activar o suspender un usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "active | suspended"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/status [patch]
func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateUserStatusRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
