package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

// FlexNumber decimal que acepta en JSON tanto números como texto numérico ("12.500", "12,5").
// Valores inválidos o ausentes quedan en 0 y los negativos se recortan a 0.
type FlexNumber struct {
	decimal.Decimal
}

// NewFlexNumber construye un FlexNumber normalizado desde cualquier valor.
func NewFlexNumber(v any) FlexNumber {
	return FlexNumber{Decimal: pricing.NonNegative(v)}
}

// UnmarshalJSON normaliza la entrada con pricing.NonNegative; nunca falla por contenido no numérico.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	d, err := decodeFlex(b, pricing.NonNegative)
	if err != nil {
		return err
	}
	n.Decimal = d
	return nil
}

// SignedFlexNumber igual que FlexNumber pero conserva el signo (márgenes objetivo).
type SignedFlexNumber struct {
	decimal.Decimal
}

// NewSignedFlexNumber construye un SignedFlexNumber desde cualquier valor.
func NewSignedFlexNumber(v any) SignedFlexNumber {
	return SignedFlexNumber{Decimal: pricing.ToNumber(v)}
}

// UnmarshalJSON normaliza la entrada con pricing.ToNumber.
func (n *SignedFlexNumber) UnmarshalJSON(b []byte) error {
	d, err := decodeFlex(b, pricing.ToNumber)
	if err != nil {
		return err
	}
	n.Decimal = d
	return nil
}

func decodeFlex(b []byte, normalize func(any) decimal.Decimal) (decimal.Decimal, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return decimal.Zero, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return decimal.Zero, err
		}
		return normalize(s), nil
	}
	return normalize(json.Number(b)), nil
}
