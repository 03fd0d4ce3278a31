package pricing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CsvHeader cabecera del export de productos.
var CsvHeader = []string{"Product Name", "Category", "HPP (Rp)", "Selling Price (Rp)", "Stock", "Margin (%)"}

// csvBOM permite que Excel detecte UTF-8.
const csvBOM = "\uFEFF"

// UndefinedMargin representación de un margen indefinido (sin precio de venta).
const UndefinedMargin = "N/A"

// ToCsvRow arma la fila [nombre, categoría, HPP, precio, stock, margen con 1 decimal].
// Los campos quedan sin escapar; el escape lo hace WriteProductsCsv.
func ToCsvRow(p Product) []string {
	margin := UndefinedMargin
	if m, ok := p.MarginPercent(); ok {
		margin = m.StringFixed(1)
	}
	return []string{
		p.Name,
		p.Category,
		p.CostPerUnit.String(),
		p.SellingPrice.String(),
		p.StockQuantity.String(),
		margin,
	}
}

// WriteProductsCsv escribe BOM, cabecera y una fila por producto. Los campos con coma,
// comillas o saltos de línea se entrecomillan y las comillas internas se duplican.
func WriteProductsCsv(w io.Writer, products []Product) error {
	if _, err := io.WriteString(w, csvBOM); err != nil {
		return fmt.Errorf("csv: escribir BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CsvHeader); err != nil {
		return fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, p := range products {
		if err := cw.Write(ToCsvRow(p)); err != nil {
			return fmt.Errorf("csv: escribir fila %q: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeCsvRow codifica una fila como línea CSV (terminada en "\n").
func EncodeCsvRow(row []string) (string, error) {
	var b strings.Builder
	cw := csv.NewWriter(&b)
	if err := cw.Write(row); err != nil {
		return "", err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
