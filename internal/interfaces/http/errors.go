package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// writeError traduce errores de dominio a status HTTP y dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	msg := "error interno"
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "INVALID_INPUT", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code, msg = fiber.StatusConflict, "EMAIL_EXISTS", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusConflict, "CONFLICT", err.Error()
	case errors.Is(err, pricing.ErrDegenerateMargin):
		status, code, msg = fiber.StatusUnprocessableEntity, "DEGENERATE_MARGIN", err.Error()
	case errors.Is(err, domain.ErrAIUnavailable):
		status, code, msg = fiber.StatusServiceUnavailable, "AI_UNAVAILABLE", err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status, code, msg = fiber.StatusRequestTimeout, "TIMEOUT", "la operación tardó demasiado"
	}
	if status == fiber.StatusInternalServerError {
		requestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// idParam devuelve el parámetro de ruta si es un UUID; si no, ErrNotFound.
func idParam(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.ErrNotFound
	}
	return id, nil
}
