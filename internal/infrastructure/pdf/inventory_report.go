package pdf

import (
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/pkg/money"
)

const inventoryReportTitle = "Laporan Inventaris"

// InventoryReport genera el PDF con las métricas del resumen y la tabla de productos.
func (g *MarotoPDFGenerator) InventoryReport(data *dto.InventoryReportData) ([]byte, error) {
	m := newDocument(inventoryReportTitle)
	o := data.Overview

	m.AddRows(titleRow(inventoryReportTitle, nonEmpty(data.BusinessName, "-"), "Tanggal: "+data.GeneratedAt.Format("02/01/2006 15:04")))
	m.AddRows(separator())

	m.AddRows(sectionRow("Ringkasan"))
	m.AddRows(keyValueRow("Total produk", strconv.Itoa(o.TotalProducts), false))
	m.AddRows(keyValueRow("Nilai aset inventaris", money.FormatRupiah(o.TotalAssetValue), true))
	m.AddRows(keyValueRow("Potensi pendapatan", money.FormatRupiah(o.PotentialRevenue), false))
	m.AddRows(keyValueRow("Kesehatan stok", strconv.Itoa(o.StockHealthPercent)+"%", true))
	m.AddRows(keyValueRow("Stok habis", strconv.Itoa(o.OutOfStockCount), false))
	m.AddRows(keyValueRow("Stok menipis", strconv.Itoa(o.LowStockCount), false))
	m.AddRows(keyValueRow("Stok aman", strconv.Itoa(o.HealthyCount), false))

	if len(o.Categories) > 0 {
		m.AddRows(separator())
		m.AddRows(sectionRow("Nilai per Kategori"))
		sizes := []int{8, 4}
		aligns := []align.Type{align.Left, align.Right}
		m.AddRows(tableRow([]string{"Kategori", "Nilai"}, sizes, aligns, true))
		for _, c := range o.Categories {
			m.AddRows(tableRow([]string{nonEmpty(c.Category, "-"), money.FormatRupiah(c.Value)}, sizes, aligns, false))
		}
	}

	if len(o.RestockPriority) > 0 {
		m.AddRows(separator())
		m.AddRows(sectionRow("Prioritas Restock"))
		sizes := []int{6, 3, 3}
		aligns := []align.Type{align.Left, align.Right, align.Center}
		m.AddRows(tableRow([]string{"Produk", "Stok", "Status"}, sizes, aligns, true))
		for _, it := range o.RestockPriority {
			status := "Menipis"
			if it.Status == "out_of_stock" {
				status = "Habis"
			}
			m.AddRows(tableRow([]string{it.Name, money.FormatNumber(it.Stock), status}, sizes, aligns, false))
		}
	}

	m.AddRows(separator())
	m.AddRows(sectionRow("Daftar Produk"))
	sizes := []int{3, 2, 2, 2, 1, 2}
	aligns := []align.Type{align.Left, align.Left, align.Right, align.Right, align.Right, align.Right}
	m.AddRows(tableRow([]string{"Nama", "Kategori", "HPP", "Harga Jual", "Stok", "Margin"}, sizes, aligns, true))
	for _, p := range data.Products {
		margin := pricing.UndefinedMargin
		if p.MarginPercent != nil {
			margin = money.FormatPercent(*p.MarginPercent)
		}
		m.AddRows(tableRow([]string{
			truncate(p.Name, 28),
			truncate(nonEmpty(p.Category, "-"), 18),
			money.FormatRupiah(p.HPP),
			money.FormatRupiah(p.SellingPrice),
			money.FormatNumber(p.Stock),
			margin,
		}, sizes, aligns, false))
	}

	return render(m)
}
