package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bizness/bizness-api/pkg/logger"
)

const localLogger = "logger"

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
// Debe registrarse después de requestid.New().
func RequestLogger(l *logger.Logger) fiber.Handler {
	base := l.Component("http").Zerolog()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := base.With().Str("request_id", requestID(c)).Logger()
		c.Locals(localLogger, &reqLog)

		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler de fiber escriba la respuesta antes de leer el status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if s, ok := c.Locals("requestid").(string); ok {
		return s
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// requestLogger devuelve el logger de la petición o el global si no hay middleware.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localLogger).(*zerolog.Logger); ok {
		return l
	}
	return &log.Logger
}
