// Package money formatea montos en Rupiah con las convenciones de Indonesia
// (punto como separador de miles, sin decimales).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah redondea a rupiah entera y formatea: 1500000 → "Rp 1.500.000".
func FormatRupiah(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-Rp " + printer.Sprintf("%d", -n)
	}
	return "Rp " + printer.Sprintf("%d", n)
}

// FormatNumber formatea un número entero con separador de miles: 12500 → "12.500".
func FormatNumber(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart())
}

// FormatPercent formatea un porcentaje con un decimal: 33.333 → "33,3%".
func FormatPercent(p decimal.Decimal) string {
	f, _ := p.Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}
