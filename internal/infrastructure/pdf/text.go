package pdf

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/pkg/money"
)

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// priceText formatea un precio opcional; nil (margen degenerado) se muestra como "N/A".
func priceText(d *decimal.Decimal) string {
	if d == nil {
		return pricing.UndefinedMargin
	}
	return money.FormatRupiah(*d)
}

// truncate corta s a max runas, agregando "..." si se recortó.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// wrapText divide el texto en líneas de a lo sumo width runas, respetando los saltos de línea
// existentes y cortando por palabras. Las palabras más largas que width se parten.
func wrapText(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var cur []rune
		for _, w := range words {
			wr := []rune(w)
			for len(wr) > width {
				if len(cur) > 0 {
					out = append(out, string(cur))
					cur = nil
				}
				out = append(out, string(wr[:width]))
				wr = wr[width:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, wr...)
			case len(cur)+1+len(wr) <= width:
				cur = append(append(cur, ' '), wr...)
			default:
				out = append(out, string(cur))
				cur = append([]rune(nil), wr...)
			}
		}
		if len(cur) > 0 {
			out = append(out, string(cur))
		}
	}
	return out
}
