// Package pdf implementa los reportes PDF del dashboard con Maroto v2.
//
// Layout del reporte de HPP (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Laporan HPP & Rekomendasi Harga │ Producto + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bahan | Satuan | Harga                              │
//	│  TOTALES: bahan / tenaga kerja / overhead / HPP per unit     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIO: margen objetivo + escalera 25/30/40/50 %            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ANÁLISIS IA (texto libre, con saltos de línea)              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bizness/bizness-api/internal/application/ports"
)

var _ ports.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("Bizness", true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// titleRow: título del reporte (izq) y subtítulo + fecha (der).
func titleRow(title, subtitle, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(subtitle, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(date, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func separator() core.Row {
	return line.NewRow(3, props.Line{Color: colorPrimary, Thickness: 0.3})
}

// keyValueRow: etiqueta a la izquierda, valor alineado a la derecha.
func keyValueRow(label, value string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(7).Add(text.New(label, props.Text{Size: 9, Top: 1, Style: style})),
		col.New(5).Add(text.New(value, props.Text{Size: 9, Top: 1, Align: align.Right, Style: style})),
	)
}

// tableRow: fila de tabla con anchos de columna en unidades de grilla (total 12).
func tableRow(cells []string, sizes []int, aligns []align.Type, header bool) core.Row {
	style := fontstyle.Normal
	if header {
		style = fontstyle.Bold
	}
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{
			Size: 8, Top: 1, Left: 1, Right: 1, Align: aligns[i], Style: style,
		})))
	}
	return row.New(6).Add(cols...)
}

// paragraphRows: una fila por línea ya envuelta.
func paragraphRows(s string, width int, color *props.Color) []core.Row {
	lines := wrapText(s, width)
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8.5, Top: 0.5, Color: color}),
		)))
	}
	return rows
}
