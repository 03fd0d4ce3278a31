package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain"
)

// FileHandler maneja el árbol de archivos y carpetas (solo metadatos).
type FileHandler struct {
	uc *usecase.FileUseCase
}

// NewFileHandler construye el handler.
func NewFileHandler(uc *usecase.FileUseCase) *FileHandler {
	return &FileHandler{uc: uc}
}

// Create godoc
// @Summary      Crear archivo o carpeta
// @Tags         files
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                 true  "ID del negocio"
// @Param        body        body  dto.CreateFileRequest  true  "parent_id nulo = raíz"
// @Success      201  {object}  dto.FileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/businesses/{businessID}/files [post]
func (h *FileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFileRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar el contenido de una carpeta
// @Tags         files
// @Security     Bearer
// @Produce      json
// @Param        businessID  path   string  true   "ID del negocio"
// @Param        parent_id   query  string  false  "carpeta; vacío = raíz"
// @Success      200  {array}  dto.FileResponse
// @Router       /api/businesses/{businessID}/files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	var parentID *string
	if p := c.Query("parent_id"); p != "" {
		if err := validate.Var(p, "uuid"); err != nil {
			return writeError(c, domain.ErrNotFound)
		}
		parentID = &p
	}
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c), parentID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar archivo o carpeta (recursivo)
// @Tags         files
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID del archivo o carpeta"
// @Success      200  {object}  dto.DeletedResponse
// @Router       /api/businesses/{businessID}/files/{id} [delete]
func (h *FileHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Delete(c.UserContext(), GetBusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
