package pricing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

func product(id, category string, cost, price, stock any) pricing.Product {
	return pricing.NewProduct(id, "Produk "+id, category, cost, price, stock)
}

func ids(ps []pricing.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSummarizeInventory_ListaVacia(t *testing.T) {
	s := pricing.SummarizeInventory(nil)

	assert.Equal(t, 0, s.StockHealthPercent)
	assert.True(t, s.TotalAssetValue.IsZero())
	assert.True(t, s.PotentialRevenue.IsZero())
	assert.Empty(t, s.OutOfStock)
	assert.Empty(t, s.LowStock)
	assert.Empty(t, s.Healthy)
	assert.Empty(t, s.Categories)
	assert.Empty(t, s.RestockPriority())
}

func TestSummarizeInventory_Limites(t *testing.T) {
	products := []pricing.Product{
		product("a", "Makanan", 1000, 2000, 0),
		product("b", "Makanan", 1000, 2000, 5),
		product("c", "Makanan", 1000, 2000, 10),
		product("d", "Makanan", 1000, 2000, "9.99"),
		product("e", "Makanan", 1000, 2000, -4),
	}
	s := pricing.SummarizeInventory(products)

	assert.Equal(t, []string{"a", "e"}, ids(s.OutOfStock))
	assert.Equal(t, []string{"b", "d"}, ids(s.LowStock))
	assert.Equal(t, []string{"c"}, ids(s.Healthy), "stock igual al umbral es saludable")
	assert.Equal(t, 20, s.StockHealthPercent)
}

func TestSummarizeInventory_Escenario(t *testing.T) {
	products := []pricing.Product{
		product("kopi", "Minuman", 10000, 25000, 100),
	}
	s := pricing.SummarizeInventory(products)

	require.Len(t, s.Categories, 1)
	assert.Equal(t, "Minuman", s.Categories[0].Category)
	assert.True(t, decimal.NewFromInt(1_000_000).Equal(s.Categories[0].Value))
	assert.True(t, decimal.NewFromInt(1_000_000).Equal(s.TotalAssetValue))
	assert.True(t, decimal.NewFromInt(2_500_000).Equal(s.PotentialRevenue))
	assert.Equal(t, 100, s.StockHealthPercent)

	m, ok := s.Healthy[0].MarginPercent()
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(60).Equal(m))
}

func TestSummarizeInventory_CategoriasOrdenadas(t *testing.T) {
	products := []pricing.Product{
		product("1", "Snack", 1000, 0, 10),    // 10.000
		product("2", "Minuman", 5000, 0, 10),  // 50.000
		product("3", "Snack", 2000, 0, 20),    // +40.000 → 50.000
		product("4", "Kerajinan", 100, 0, 10), // 1.000
		product("5", "Bumbu", 0, 0, 0),        // 0
	}
	s := pricing.SummarizeInventory(products)

	require.Len(t, s.Categories, 4)
	// empate Snack/Minuman: gana el orden de primera aparición
	assert.Equal(t, "Snack", s.Categories[0].Category)
	assert.Equal(t, "Minuman", s.Categories[1].Category)
	assert.Equal(t, "Kerajinan", s.Categories[2].Category)
	assert.Equal(t, "Bumbu", s.Categories[3].Category)

	assert.Len(t, s.TopCategories(2), 2)
	assert.Len(t, s.TopCategories(0), 4)
	assert.Len(t, s.TopCategories(10), 4)
}

func TestSummarizeInventoryWithThreshold(t *testing.T) {
	products := []pricing.Product{
		product("a", "x", 1, 1, 3),
		product("b", "x", 1, 1, 4),
	}
	s := pricing.SummarizeInventoryWithThreshold(products, decimal.NewFromInt(4))
	assert.Equal(t, []string{"a"}, ids(s.LowStock))
	assert.Equal(t, []string{"b"}, ids(s.Healthy))
	assert.Equal(t, 50, s.StockHealthPercent)
}

func TestRestockPriority_SinStockPrimeroYOrdenEstable(t *testing.T) {
	products := []pricing.Product{
		product("low1", "x", 1, 1, 3),
		product("ok", "x", 1, 1, 50),
		product("out1", "x", 1, 1, 0),
		product("low2", "x", 1, 1, 1),
		product("out2", "x", 1, 1, 0),
	}
	s := pricing.SummarizeInventory(products)
	assert.Equal(t, []string{"out1", "out2", "low1", "low2"}, ids(s.RestockPriority()))
}

func TestSummarizeInventory_ParticionExhaustiva(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		n := rng.Intn(30)
		products := make([]pricing.Product, 0, n)
		for i := 0; i < n; i++ {
			products = append(products, product(fmt.Sprintf("%d", i), "c", rng.Intn(5000), rng.Intn(9000), rng.Intn(25)-3))
		}
		s := pricing.SummarizeInventory(products)

		assert.Equal(t, len(products), s.Total())
		seen := make(map[string]int)
		for _, bucket := range [][]pricing.Product{s.OutOfStock, s.LowStock, s.Healthy} {
			for _, p := range bucket {
				seen[p.ID]++
			}
		}
		for _, p := range products {
			assert.Equal(t, 1, seen[p.ID], "el producto %s debe estar en exactamente un grupo", p.ID)
		}
		assert.GreaterOrEqual(t, s.StockHealthPercent, 0)
		assert.LessOrEqual(t, s.StockHealthPercent, 100)
	}
}

func TestHealthPercent_Redondeo(t *testing.T) {
	products := []pricing.Product{
		product("a", "x", 1, 1, 10),
		product("b", "x", 1, 1, 10),
		product("c", "x", 1, 1, 0),
	}
	// 2/3 = 66.67 → 67
	assert.Equal(t, 67, pricing.SummarizeInventory(products).StockHealthPercent)
}

func TestFromMaterial(t *testing.T) {
	m := pricing.FromMaterial("m1", "Tepung Terigu", "Bahan Baku", "25", "12000")
	assert.True(t, decimal.NewFromInt(12000).Equal(m.CostPerUnit))
	assert.True(t, m.SellingPrice.IsZero())
	_, ok := m.MarginPercent()
	assert.False(t, ok)
}
