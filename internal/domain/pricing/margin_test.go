package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

func TestComputeSellingPrice_Escenario(t *testing.T) {
	price, err := pricing.ComputeSellingPrice(d("20000"), d("30"))
	require.NoError(t, err)
	assert.Equal(t, "28571.43", price.StringFixed(2))

	res := pricing.Price(d("20000"), d("30"))
	assert.False(t, res.Degenerate)
	assert.Equal(t, "8571.43", res.ProfitPerUnit.StringFixed(2))
}

func TestComputeSellingPrice_MargenDegenerado(t *testing.T) {
	for _, m := range []string{"100", "150", "100.0001"} {
		_, err := pricing.ComputeSellingPrice(d("20000"), d(m))
		assert.ErrorIs(t, err, pricing.ErrDegenerateMargin, "margen %s", m)

		res := pricing.Price(d("20000"), d(m))
		assert.True(t, res.Degenerate)
		assert.True(t, res.SellingPrice.IsZero())
	}
}

func TestComputeSellingPrice_MargenCero(t *testing.T) {
	price, err := pricing.ComputeSellingPrice(d("12500"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, d("12500").Equal(price))
}

func TestComputeMarginPercent(t *testing.T) {
	m, ok := pricing.ComputeMarginPercent(d("10000"), d("25000"))
	require.True(t, ok)
	assert.True(t, d("60").Equal(m), "margen = %s", m)

	m, ok = pricing.ComputeMarginPercent(d("30000"), d("25000"))
	require.True(t, ok)
	assert.True(t, m.IsNegative(), "vender bajo costo da margen negativo")

	_, ok = pricing.ComputeMarginPercent(d("10000"), decimal.Zero)
	assert.False(t, ok, "sin precio de venta el margen es indefinido")
}

func TestMargen_IdaYVuelta(t *testing.T) {
	tolerance := d("0.000001")
	costs := []string{"1", "999", "20000", "12345.67", "750000"}
	margins := []string{"-50", "0", "1", "25", "30", "33.3", "40", "50", "99", "99.99"}
	for _, c := range costs {
		for _, m := range margins {
			price, err := pricing.ComputeSellingPrice(d(c), d(m))
			require.NoError(t, err)
			back, ok := pricing.ComputeMarginPercent(d(c), price)
			require.True(t, ok)
			assert.True(t, back.Sub(d(m)).Abs().LessThan(tolerance), "costo %s margen %s → %s", c, m, back)
		}
	}
}

func TestPriceLadder(t *testing.T) {
	ladder := pricing.PriceLadder(d("20000"), pricing.RecommendedMargins)
	require.Len(t, ladder, 4)
	want := []string{"26666.67", "28571.43", "33333.33", "40000.00"}
	for i, r := range ladder {
		assert.Equal(t, want[i], r.SellingPrice.StringFixed(2))
		assert.True(t, pricing.RecommendedMargins[i].Equal(r.TargetMarginPercent))
	}
}
