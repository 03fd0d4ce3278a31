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

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini
// (generateContent).
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
// Si apiKey está vacío, las llamadas devuelven domain.ErrAIUnavailable.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiDefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// WithBaseURL cambia el host de la API (proxies o servidores de prueba).
func (s *GeminiService) WithBaseURL(baseURL string) *GeminiService {
	s.baseURL = strings.TrimRight(baseURL, "/")
	return s
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Chat responde un mensaje del asistente de negocio.
func (s *GeminiService) Chat(ctx context.Context, message string) (string, error) {
	return s.generate(ctx, chatSystemPrompt, []geminiPart{{Text: message}}, 0.7)
}

// AnalyzeHPP analiza un cálculo de HPP.
func (s *GeminiService) AnalyzeHPP(ctx context.Context, userInput string) (string, error) {
	return s.generate(ctx, hppSystemPrompt, []geminiPart{{Text: userInput}}, 0.3)
}

// ReadReceipt envía la imagen como inline_data junto al prompt de OCR.
func (s *GeminiService) ReadReceipt(ctx context.Context, image []byte, mimeType string) (string, error) {
	parts := []geminiPart{
		{Text: receiptPrompt},
		{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
	}
	return s.generate(ctx, "", parts, 0.1)
}

func (s *GeminiService) generate(ctx context.Context, system string, parts []geminiPart, temperature float32) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: genConfig{
			Temperature:     temperature,
			MaxOutputTokens: 2048,
		},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

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

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	var sb strings.Builder
	for _, p := range gemResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
