package pricing_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

func TestToNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"texto vacío", "", "0"},
		{"solo espacios", "   ", "0"},
		{"entero", 15000, "15000"},
		{"int64", int64(-3), "-3"},
		{"float", 12.5, "12.5"},
		{"NaN", math.NaN(), "0"},
		{"infinito", math.Inf(1), "0"},
		{"texto entero", "25000", "25000"},
		{"texto decimal", " 12.75 ", "12.75"},
		{"coma decimal", "12,5", "12.5"},
		{"prefijo numérico", "10kg", "10"},
		{"negativo", "-4.5", "-4.5"},
		{"punto inicial", ".5", "0.5"},
		{"punto final", "7.", "7"},
		{"exponente", "1e3", "1000"},
		{"exponente incompleto", "2e", "2"},
		{"no numérico", "abc", "0"},
		{"solo signo", "-", "0"},
		{"Infinity textual", "Infinity", "0"},
		{"separador de miles", "1,000.50", "1"},
		{"json.Number", json.Number("99.9"), "99.9"},
		{"decimal", decimal.RequireFromString("3.14"), "3.14"},
		{"bool", true, "0"},
		{"struct", struct{}{}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ToNumber(tc.in)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "ToNumber(%v) = %s, esperado %s", tc.in, got, tc.want)
		})
	}
}

func TestToNumber_NuncaEntraEnPanico(t *testing.T) {
	inputs := []any{"--1", "+", "1e99999", "..", "١٢٣", "\x00", []byte("12"), map[string]int{}, (*string)(nil), (*decimal.Decimal)(nil)}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = pricing.ToNumber(in) })
	}
}

func TestNonNegative(t *testing.T) {
	assert.True(t, pricing.NonNegative("-10").IsZero())
	assert.True(t, pricing.NonNegative(-0.01).IsZero())
	assert.Equal(t, "8", pricing.NonNegative("8").String())
}
