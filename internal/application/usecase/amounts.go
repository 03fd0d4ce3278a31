package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain"
)

// storedScale decimales que conserva la base (columnas NUMERIC(18,4)).
const storedScale = 4

// maxStoredAmount límite exclusivo de NUMERIC(18,4): 14 dígitos enteros.
var maxStoredAmount = decimal.New(1, 14)

// storedAmounts redondea cada valor a la escala de la base y devuelve
// domain.ErrInvalidInput si alguno no cabe en la columna.
func storedAmounts(values ...*decimal.Decimal) error {
	for _, v := range values {
		r := v.Round(storedScale)
		if r.Abs().GreaterThanOrEqual(maxStoredAmount) {
			return domain.ErrInvalidInput
		}
		*v = r
	}
	return nil
}
