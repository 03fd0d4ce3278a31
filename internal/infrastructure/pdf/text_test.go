package pdf

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	lines := wrapText("HPP per unit sudah sesuai\n\nNaikkan harga jual", 12)
	assert.Equal(t, []string{"HPP per unit", "sudah sesuai", "", "Naikkan", "harga jual"}, lines)

	for _, l := range wrapText(strings.Repeat("a", 25)+" b", 10) {
		assert.LessOrEqual(t, len([]rune(l)), 10)
	}
}

func TestTruncateYPriceText(t *testing.T) {
	assert.Equal(t, "Kopi", truncate("Kopi", 10))
	assert.Equal(t, "Kopi Su...", truncate("Kopi Susu Gula Aren", 10))

	assert.Equal(t, "N/A", priceText(nil))
	d := decimal.NewFromInt(28571)
	assert.Equal(t, "Rp 28.571", priceText(&d))
}
