package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/bizness/bizness-api/internal/interfaces/http"
)

func buildLimitedApp(cfg apphttp.RateLimit) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RateLimitByUser(cfg),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRateLimitByUser_BloqueaTrasLaRafaga(t *testing.T) {
	app := buildLimitedApp(apphttp.RateLimit{PerMinute: 1, Burst: 2})
	tok := bearer(t, testUserID, "user")

	for i := 0; i < 2; i++ {
		resp := doRequest(t, app, tok)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, app, tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
}

func TestRateLimitByUser_BucketPorUsuario(t *testing.T) {
	app := buildLimitedApp(apphttp.RateLimit{PerMinute: 1, Burst: 1})

	resp := doRequest(t, app, bearer(t, testUserID, "user"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, bearer(t, "00000000-0000-0000-0000-000000000002", "user"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, bearer(t, testUserID, "user"))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp.Body.Close()
}

func TestRateLimitByUser_DesactivadoSinLimite(t *testing.T) {
	app := fiber.New()
	app.Get("/open", apphttp.RateLimitByUser(apphttp.RateLimit{}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 20; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/open", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
