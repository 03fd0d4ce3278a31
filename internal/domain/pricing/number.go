// Package pricing contiene el motor de costos, márgenes, precios de venta y salud de
// inventario. Todas las funciones son puras: reciben snapshots en memoria y devuelven
// resultados nuevos, sin I/O ni estado compartido.
package pricing

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ToNumber normaliza un valor numérico que puede llegar como texto (formularios editables)
// a decimal. Nunca falla: nil, texto vacío o no numérico devuelven 0.
//
// El texto se interpreta por prefijo ("12kg" → 12). Se acepta coma como separador decimal
// cuando no hay punto ("12,5" → 12.5); no se aceptan separadores de miles.
func ToNumber(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case decimal.NullDecimal:
		if !n.Valid {
			return decimal.Zero
		}
		return n.Decimal
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0)
	case uint32:
		return decimal.NewFromInt(int64(n))
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case json.Number:
		return parseText(string(n))
	case string:
		return parseText(n)
	case *string:
		if n == nil {
			return decimal.Zero
		}
		return parseText(*n)
	default:
		return decimal.Zero
	}
}

// NonNegative aplica ToNumber y recorta los negativos a 0 (montos y cantidades de registros).
func NonNegative(v any) decimal.Decimal {
	d := ToNumber(v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseText(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	prefix := numericPrefix(s)
	if prefix == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// numericPrefix devuelve el prefijo más largo de s con forma [+-]d*[.d*][(e|E)[+-]d+],
// exigiendo al menos un dígito en la mantisa. "" si no hay tal prefijo.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	mantissa := strings.TrimPrefix(strings.TrimSuffix(s[:i], "."), "+")
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		// exponentes absurdos se tratan como no numéricos (Infinity en punto flotante)
		if j > start && j-start <= 4 {
			return mantissa + s[i:j]
		}
	}
	return mantissa
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
