package pdf_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/infrastructure/pdf"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestHPPReport(t *testing.T) {
	calc := &dto.HPPCalculationResponse{
		ProductName: "Kopi Susu",
		Breakdown: dto.CostBreakdownDTO{
			Materials:      []dto.MaterialLineResult{{Name: "Kopi", Unit: "kg", Price: dec("50000")}},
			MaterialsTotal: dec("50000"),
			LaborCost:      dec("20000"),
			OverheadCost:   dec("10000"),
			TotalCost:      dec("80000"),
			Quantity:       dec("4"),
			UnitCost:       dec("20000"),
		},
		Pricing: dto.PriceDTO{
			UnitCost:            dec("20000"),
			TargetMarginPercent: dec("30"),
			SellingPrice:        ptr(dec("28571.43")),
			ProfitPerUnit:       ptr(dec("8571.43")),
			MarginStatus:        dto.MarginStatusOK,
		},
		Ladder: []dto.PriceDTO{
			{TargetMarginPercent: dec("25"), SellingPrice: ptr(dec("26666.67")), ProfitPerUnit: ptr(dec("6666.67"))},
		},
		Notes:       "Dijual di kantin kampus",
		AIAnalysis:  strings.Repeat("Harga sudah kompetitif. ", 30),
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	doc, err := pdf.NewMarotoPDFGenerator().HPPReport(calc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestHPPReport_MargenDegenerado(t *testing.T) {
	calc := &dto.HPPCalculationResponse{
		Pricing: dto.PriceDTO{TargetMarginPercent: dec("100"), MarginStatus: dto.MarginStatusDegenerate},
		AIError: "layanan AI tidak tersedia",
	}
	doc, err := pdf.NewMarotoPDFGenerator().HPPReport(calc)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestInventoryReport(t *testing.T) {
	data := &dto.InventoryReportData{
		BusinessName: "Warung Bu Sri",
		Overview: dto.OverviewResponse{
			TotalProducts:      2,
			TotalAssetValue:    dec("1000000"),
			PotentialRevenue:   dec("2500000"),
			StockHealthPercent: 50,
			HealthyCount:       1,
			OutOfStockCount:    1,
			Categories:         []dto.CategoryValueDTO{{Category: "Minuman", Value: dec("1000000")}},
			RestockPriority:    []dto.StockItemDTO{{Name: "Teh", Stock: dec("0"), Status: "out_of_stock"}},
		},
		Products: []dto.ProductResponse{
			{Name: "Kopi", Category: "Minuman", HPP: dec("10000"), SellingPrice: dec("25000"), Stock: dec("100"), MarginPercent: ptr(dec("60"))},
			{Name: "Teh", Category: "Minuman", HPP: dec("3000"), Stock: dec("0")},
		},
		GeneratedAt: time.Now(),
	}
	doc, err := pdf.NewMarotoPDFGenerator().InventoryReport(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
