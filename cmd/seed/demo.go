package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/pkg/config"
)

type demo struct {
	businesses   *usecase.BusinessUseCase
	products     *usecase.ProductUseCase
	materials    *usecase.MaterialUseCase
	todos        *usecase.TodoUseCase
	transactions *usecase.TransactionUseCase
}

func cfgThreshold(cfg *config.Config) decimal.Decimal {
	return decimal.NewFromInt(int64(cfg.Inventory.LowStockThreshold))
}

// run crea una kedai kopi con catálogo, stock y un mes de movimientos.
func (d demo) run(ctx context.Context, ownerID string) (string, error) {
	b, err := d.businesses.Create(ctx, ownerID, dto.CreateBusinessRequest{Name: "Kopi Senja", Category: "kuliner"})
	if err != nil {
		return "", err
	}

	products := []dto.CreateProductRequest{
		{Name: "Kopi Susu Gula Aren", Category: "Minuman", HPP: n(9500), SellingPrice: n(22000), Stock: n(120)},
		{Name: "Es Teh Manis", Category: "Minuman", HPP: n(2500), SellingPrice: n(8000), Stock: n(6)},
		{Name: "Roti Bakar Coklat", Category: "Makanan", HPP: n(7000), SellingPrice: n(15000), Stock: n(0)},
		{Name: "Pisang Goreng", Category: "Makanan", HPP: n(3000), SellingPrice: n(10000), Stock: n(25)},
		{Name: "Tumbler Kopi Senja", Category: "Merchandise", HPP: n(45000), SellingPrice: n(0), Stock: n(15)},
	}
	for _, p := range products {
		if _, err := d.products.Create(ctx, b.ID, p); err != nil {
			return "", err
		}
	}

	materials := []dto.CreateMaterialRequest{
		{Name: "Biji Kopi Robusta", Category: "Bahan Baku", Unit: "kg", Stock: n(4), PricePerUnit: n(120000)},
		{Name: "Gula Aren", Category: "Bahan Baku", Unit: "kg", Stock: n(12), PricePerUnit: n(30000)},
		{Name: "Susu UHT", Category: "Bahan Baku", Unit: "liter", Stock: n(0), PricePerUnit: n(18000)},
		{Name: "Cup Plastik 16oz", Category: "Kemasan", Unit: "pcs", Stock: n(500), PricePerUnit: n(650)},
	}
	var kopiID string
	for i, m := range materials {
		out, err := d.materials.Create(ctx, b.ID, m)
		if err != nil {
			return "", err
		}
		if i == 0 {
			kopiID = out.ID
		}
	}
	if _, err := d.materials.Restock(ctx, b.ID, kopiID, dto.RestockRequest{Quantity: n(5), UnitPrice: n(125000)}); err != nil {
		return "", err
	}

	now := time.Now()
	for day := 1; day <= 28; day++ {
		date := now.AddDate(0, 0, -day)
		sale := dto.CreateTransactionRequest{Type: "sale", Description: "Penjualan harian", Amount: decimal.NewFromInt(int64(350000 + day*12500)), Date: &date}
		if _, err := d.transactions.Create(ctx, b.ID, sale); err != nil {
			return "", err
		}
		if day%7 == 0 {
			rent := dto.CreateTransactionRequest{Type: "expense", Description: "Sewa tempat mingguan", Amount: decimal.NewFromInt(500000), Date: &date}
			if _, err := d.transactions.Create(ctx, b.ID, rent); err != nil {
				return "", err
			}
		}
	}

	for _, t := range []dto.CreateTodoRequest{
		{Text: "Restock susu UHT", Priority: "high"},
		{Text: "Foto menu baru untuk Instagram", Priority: "medium"},
		{Text: "Hitung ulang HPP roti bakar", Priority: "low"},
	} {
		if _, err := d.todos.Create(ctx, b.ID, t); err != nil {
			return "", err
		}
	}
	return b.ID, nil
}

func n(v any) dto.FlexNumber { return dto.NewFlexNumber(v) }
