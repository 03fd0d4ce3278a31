package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/consts/align"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/pkg/money"
)

const hppReportTitle = "Laporan HPP & Rekomendasi Harga"

// HPPReport genera el PDF del cálculo de HPP y devuelve sus bytes.
func (g *MarotoPDFGenerator) HPPReport(calc *dto.HPPCalculationResponse) ([]byte, error) {
	m := newDocument(hppReportTitle)

	name := nonEmpty(calc.ProductName, "Produk")
	m.AddRows(titleRow(hppReportTitle, name, "Tanggal: "+calc.GeneratedAt.Format("02/01/2006 15:04")))
	m.AddRows(separator())

	// Rincian biaya
	b := calc.Breakdown
	m.AddRows(sectionRow("Rincian Biaya Produksi"))
	sizes := []int{6, 2, 4}
	aligns := []align.Type{align.Left, align.Center, align.Right}
	m.AddRows(tableRow([]string{"Bahan", "Satuan", "Harga"}, sizes, aligns, true))
	for _, l := range b.Materials {
		m.AddRows(tableRow([]string{nonEmpty(l.Name, "-"), nonEmpty(l.Unit, "-"), money.FormatRupiah(l.Price)}, sizes, aligns, false))
	}
	m.AddRows(keyValueRow("Total bahan baku", money.FormatRupiah(b.MaterialsTotal), false))
	m.AddRows(keyValueRow("Biaya tenaga kerja", money.FormatRupiah(b.LaborCost), false))
	m.AddRows(keyValueRow("Biaya overhead", money.FormatRupiah(b.OverheadCost), false))
	m.AddRows(keyValueRow("Total biaya produksi", money.FormatRupiah(b.TotalCost), true))
	m.AddRows(keyValueRow("Jumlah produksi", money.FormatNumber(b.Quantity)+" unit", false))
	m.AddRows(keyValueRow("HPP per unit", money.FormatRupiah(b.UnitCost), true))
	m.AddRows(separator())

	// Harga jual manual
	m.AddRows(sectionRow("Harga Jual"))
	m.AddRows(keyValueRow("Target margin", money.FormatPercent(calc.Pricing.TargetMarginPercent), false))
	m.AddRows(keyValueRow("Harga jual per unit", priceText(calc.Pricing.SellingPrice), true))
	m.AddRows(keyValueRow("Laba per unit", priceText(calc.Pricing.ProfitPerUnit), false))
	if calc.Pricing.MarginStatus == dto.MarginStatusDegenerate {
		m.AddRows(paragraphRows("Margin 100% atau lebih tidak menghasilkan harga jual yang valid.", 100, colorDanger)...)
	}

	// Escalera de márgenes recomendados
	m.AddRows(sectionRow("Rekomendasi Harga"))
	lSizes := []int{4, 4, 4}
	lAligns := []align.Type{align.Left, align.Right, align.Right}
	m.AddRows(tableRow([]string{"Margin", "Harga Jual", "Laba / unit"}, lSizes, lAligns, true))
	for _, p := range calc.Ladder {
		m.AddRows(tableRow([]string{
			money.FormatPercent(p.TargetMarginPercent),
			priceText(p.SellingPrice),
			priceText(p.ProfitPerUnit),
		}, lSizes, lAligns, false))
	}

	if calc.Notes != "" {
		m.AddRows(separator())
		m.AddRows(sectionRow("Catatan"))
		m.AddRows(paragraphRows(calc.Notes, 100, colorGray)...)
	}

	// Análisis IA
	if calc.AIAnalysis != "" || calc.AIError != "" {
		m.AddRows(separator())
		m.AddRows(sectionRow("Analisis AI"))
		if calc.AIAnalysis != "" {
			m.AddRows(paragraphRows(calc.AIAnalysis, 100, nil)...)
		} else {
			m.AddRows(paragraphRows("Analisis AI tidak tersedia: "+calc.AIError, 100, colorDanger)...)
		}
	}

	return render(m)
}
