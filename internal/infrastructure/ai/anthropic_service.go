package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bizness/bizness-api/internal/application/ports"
	"github.com/bizness/bizness-api/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Messages API).
// Usa net/http; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven domain.ErrAIUnavailable en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicDefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithBaseURL cambia el host de la API (proxies o servidores de prueba).
func (s *AnthropicService) WithBaseURL(baseURL string) *AnthropicService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type   string                `json:"type"`
	Text   string                `json:"text,omitempty"`
	Source *anthropicImageSource `json:"source,omitempty"`
}

type anthropicImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Chat responde un mensaje del asistente de negocio.
func (s *AnthropicService) Chat(ctx context.Context, message string) (string, error) {
	return s.send(ctx, chatSystemPrompt, []anthropicBlock{{Type: "text", Text: message}})
}

// AnalyzeHPP analiza un cálculo de HPP.
func (s *AnthropicService) AnalyzeHPP(ctx context.Context, userInput string) (string, error) {
	return s.send(ctx, hppSystemPrompt, []anthropicBlock{{Type: "text", Text: userInput}})
}

// ReadReceipt envía la imagen como bloque base64 seguido del prompt de OCR.
func (s *AnthropicService) ReadReceipt(ctx context.Context, image []byte, mimeType string) (string, error) {
	blocks := []anthropicBlock{
		{
			Type: "image",
			Source: &anthropicImageSource{
				Type:      "base64",
				MediaType: mimeType,
				Data:      base64.StdEncoding.EncodeToString(image),
			},
		},
		{Type: "text", Text: receiptPrompt},
	}
	return s.send(ctx, "", blocks)
}

func (s *AnthropicService) send(ctx context.Context, system string, blocks []anthropicBlock) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 2048,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: blocks}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode)
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	var sb strings.Builder
	for _, c := range anthResp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return text, nil
}
