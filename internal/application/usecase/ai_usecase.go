package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/ports"
	"github.com/bizness/bizness-api/internal/domain"
)

// MaxReceiptBytes tamaño máximo de la imagen de un recibo.
const MaxReceiptBytes = 5 << 20

// AIUseCase orquesta el asistente de chat y el OCR de recibos.
// Cada llamada al LLM corre con un timeout para que las latencias externas
// no bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm     ports.LLMService
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AIUseCase{llm: llm, timeout: timeout}
}

// Chat envía el mensaje al asistente y devuelve su respuesta.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	reply, err := uc.llm.Chat(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("chat IA: %w", err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}

// ReadReceipt extrae el texto de la imagen de un recibo. Solo acepta image/* hasta MaxReceiptBytes.
func (uc *AIUseCase) ReadReceipt(ctx context.Context, image []byte, mimeType string) (*dto.OCRResponse, error) {
	if !strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return nil, domain.ErrInvalidInput
	}
	if len(image) == 0 || len(image) > MaxReceiptBytes {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.ReadReceipt(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("OCR IA: %w", err)
	}
	return &dto.OCRResponse{Text: text}, nil
}
