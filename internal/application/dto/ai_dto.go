package dto

// ChatRequest mensaje para el asistente.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// OCRResponse texto extraído de un recibo, sin interpretar.
type OCRResponse struct {
	Text string `json:"text"`
}
