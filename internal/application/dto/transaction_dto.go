package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar una transacción.
// El signo se normaliza por tipo: ventas positivas, gastos y reposiciones negativos.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=sale expense restock"`
	Description string          `json:"description" validate:"omitempty,max=300"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
