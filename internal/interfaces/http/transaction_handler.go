package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
)

// TransactionHandler maneja el libro de ventas y gastos.
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción
// @Description  Las ventas se guardan en positivo; gastos y reposiciones en negativo.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        businessID  path  string                        true  "ID del negocio"
// @Param        body        body  dto.CreateTransactionRequest  true  "type: sale | expense | restock"
// @Success      201  {object}  dto.TransactionResponse
// @Router       /api/businesses/{businessID}/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
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
// @Summary      Listar transacciones (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        businessID  path   string  true   "ID del negocio"
// @Param        limit       query  int     false  "0 = todas"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/businesses/{businessID}/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	out, err := h.uc.List(c.UserContext(), GetBusinessID(c), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
