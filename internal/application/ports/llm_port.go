package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz; la
// aplicación solo conoce este contrato. Las respuestas son texto libre y no se interpretan.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type LLMService interface {
	// Chat responde un mensaje del asistente de negocio.
	Chat(ctx context.Context, message string) (string, error)

	// AnalyzeHPP analiza un cálculo de HPP descrito en texto y devuelve recomendaciones.
	AnalyzeHPP(ctx context.Context, userInput string) (string, error)

	// ReadReceipt extrae el texto de la imagen de un recibo.
	ReadReceipt(ctx context.Context, image []byte, mimeType string) (string, error)
}
