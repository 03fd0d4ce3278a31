package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeUnitCost_Escenario(t *testing.T) {
	got := pricing.ComputeUnitCost(d("50000"), d("20000"), d("10000"), d("4"))
	assert.True(t, d("20000").Equal(got), "HPP = %s", got)
}

func TestComputeUnitCost_CantidadMenorAUnoSeTrataComoUno(t *testing.T) {
	for _, q := range []string{"0", "-3", "0.5"} {
		got := pricing.ComputeUnitCost(d("1000"), d("500"), d("500"), d(q))
		assert.True(t, d("2000").Equal(got), "quantity=%s → %s", q, got)
	}
}

func TestMaterialsTotal_SumaPreciosSinMultiplicar(t *testing.T) {
	lines := []pricing.MaterialLine{
		{Name: "Tepung", Unit: "kg", Price: d("30000")},
		{Name: "Gula", Unit: "kg", Price: d("15000")},
		{Name: "Telur", Unit: "butir", Price: d("5000")},
	}
	assert.True(t, d("50000").Equal(pricing.MaterialsTotal(lines)))
	assert.True(t, pricing.MaterialsTotal(nil).IsZero())
}

func TestBreakdown(t *testing.T) {
	lines := []pricing.MaterialLine{{Name: "Kopi", Price: d("40000")}, {Name: "Susu", Price: d("10000")}}
	b := pricing.Breakdown(lines, d("20000"), d("10000"), d("0"))

	assert.True(t, d("50000").Equal(b.MaterialsTotal))
	assert.True(t, d("1").Equal(b.Quantity), "la cantidad efectiva queda en 1")
	assert.True(t, d("80000").Equal(b.UnitCost))
	assert.True(t, d("80000").Equal(b.TotalCost()))
}
