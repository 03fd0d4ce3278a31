package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// AIHandler expone el asistente de chat y la lectura de recibos.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Chat godoc
// @Summary      Chat con el asistente de negocio
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200  {object}  dto.ChatResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Chat(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// OCR godoc
// @Summary      Leer el texto de un recibo
// @Description  multipart/form-data con el campo "file" (image/*, máximo 5 MiB).
// @Tags         ai
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "imagen del recibo"
// @Success      200  {object}  dto.OCRResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/ai/ocr [post]
func (h *AIHandler) OCR(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo \"file\" requerido"})
	}
	if fh.Size > usecase.MaxReceiptBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la imagen supera 5 MiB"})
	}
	mimeType := fh.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "solo se aceptan imágenes"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	image, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ReadReceipt(c.UserContext(), image, mimeType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
