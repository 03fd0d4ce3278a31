package ai

import (
	"fmt"

	"github.com/bizness/bizness-api/internal/application/ports"
	"github.com/bizness/bizness-api/pkg/config"
)

// NewFromConfig elige el adaptador según AI_PROVIDER.
func NewFromConfig(cfg config.AIConfig) (ports.LLMService, error) {
	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "anthropic":
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("AI: proveedor desconocido %q", cfg.Provider)
	}
}
