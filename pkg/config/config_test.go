package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 10, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, 5, cfg.Inventory.TopN)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout())
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 20, cfg.AI.RatePerMinute)
	assert.Equal(t, 5, cfg.AI.RateBurst)
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "25")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_ProduccionExigeSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ProveedorInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AI_PROVIDER", "openai")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:w", DBName: "bizness", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aw@db:5432/bizness?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
