package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/domain/entity"
)

// LocalBusinessID es la key de c.Locals con el negocio ya autorizado.
const LocalBusinessID = "business_id"

// businessAuthorizer es el contrato mínimo del middleware; lo implementa *usecase.BusinessUseCase.
type businessAuthorizer interface {
	Authorize(ctx context.Context, userID, role, businessID string) (*entity.Business, error)
}

// RequireBusinessAccess verifica que el usuario del token pueda operar sobre :businessID.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 404 si el negocio no existe.
//   - 403 si pertenece a otro usuario (los admin pasan siempre).
func RequireBusinessAccess(authz businessAuthorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "businessID")
		if err != nil {
			return writeError(c, err)
		}
		b, err := authz.Authorize(c.UserContext(), GetUserID(c), GetRole(c), id)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalBusinessID, b.ID)
		return c.Next()
	}
}

// GetBusinessID devuelve el negocio autorizado por RequireBusinessAccess.
func GetBusinessID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalBusinessID).(string)
	return s
}
