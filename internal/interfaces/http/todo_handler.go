package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// TodoHandler maneja la lista de tareas del negocio.
type TodoHandler struct {
	uc *usecase.TodoUseCase
}

// NewTodoHandler construye el handler.
func NewTodoHandler(uc *usecase.TodoUseCase) *TodoHandler {
	return &TodoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         todos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                 true  "ID del negocio"
// @Param        body        body  dto.CreateTodoRequest  true  "text, priority, due_date"
// @Success      201  {object}  dto.TodoResponse
// @Router       /api/businesses/{businessID}/todos [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTodoRequest
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
// @Summary      Listar tareas
// @Tags         todos
// @Security     Bearer
// @Produce      json
// @Param        businessID  path   string  true   "ID del negocio"
// @Param        status      query  string  false  "all | active | completed"
// @Param        q           query  string  false  "búsqueda en el texto"
// @Success      200  {array}  dto.TodoResponse
// @Router       /api/businesses/{businessID}/todos [get]
func (h *TodoHandler) List(c *fiber.Ctx) error {
	var in dto.TodoListRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea
// @Tags         todos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                 true  "ID del negocio"
// @Param        id          path  string                 true  "ID de la tarea"
// @Param        body        body  dto.UpdateTodoRequest  true  "campos a modificar"
// @Success      200  {object}  dto.TodoResponse
// @Router       /api/businesses/{businessID}/todos/{id} [put]
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateTodoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetBusinessID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Marcar o desmarcar tarea como completada
// @Tags         todos
// @Security     Bearer
// @Produce      json
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TodoResponse
// @Router       /api/businesses/{businessID}/todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Toggle(c.UserContext(), GetBusinessID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         todos
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Param        id          path  string  true  "ID de la tarea"
// @Success      204
// @Router       /api/businesses/{businessID}/todos/{id} [delete]
func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetBusinessID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
