package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// Tipos de transacción.
const (
	TransactionSale    = pricing.EntrySale
	TransactionExpense = "expense"
	TransactionRestock = "restock"
)

// Transaction movimiento financiero de un negocio. Las ventas son positivas;
// gastos y reposiciones se registran con monto negativo.
type Transaction struct {
	ID          string
	BusinessID  string
	Type        string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
}

// ValidTransactionType indica si t es un tipo conocido.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionSale, TransactionExpense, TransactionRestock:
		return true
	}
	return false
}

// LedgerEntries convierte transacciones al modelo del motor.
func LedgerEntries(list []*Transaction) []pricing.LedgerEntry {
	out := make([]pricing.LedgerEntry, 0, len(list))
	for _, t := range list {
		out = append(out, pricing.LedgerEntry{Type: t.Type, Amount: t.Amount})
	}
	return out
}
