package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizness/bizness-api/pkg/money"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0", "Rp 0"},
		{"950", "Rp 950"},
		{"25000", "Rp 25.000"},
		{"1000000", "Rp 1.000.000"},
		{"28571.4286", "Rp 28.571"},
		{"28571.5", "Rp 28.572"},
		{"-150000", "-Rp 150.000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.FormatRupiah(decimal.RequireFromString(tc.in)), tc.in)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.500", money.FormatNumber(decimal.NewFromInt(12500)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "33,3%", money.FormatPercent(decimal.RequireFromString("33.333")))
}
