package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/testutil"
)

const bizID = "00000000-0000-0000-0000-0000000000b1"

func newMaterialUC(store *testutil.Store) *usecase.MaterialUseCase {
	return usecase.NewMaterialUseCase(store.Materials(), store, decimal.NewFromInt(10), 5)
}

func TestMaterialUseCase_RestockPromedioPonderado(t *testing.T) {
	store := testutil.NewStore()
	uc := newMaterialUC(store)
	ctx := context.Background()

	m, err := uc.Create(ctx, bizID, dto.CreateMaterialRequest{
		Name: "Tepung Terigu", Category: "Bahan Baku", Unit: "kg",
		Stock: dto.NewFlexNumber(10), PricePerUnit: dto.NewFlexNumber(1000),
	})
	require.NoError(t, err)

	out, err := uc.Restock(ctx, bizID, m.ID, dto.RestockRequest{
		Quantity: dto.NewFlexNumber(10), UnitPrice: dto.NewFlexNumber("2000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "20", out.Material.Stock.String())
	assert.Equal(t, "1500", out.Material.PricePerUnit.String())
	assert.Equal(t, "restock", out.Transaction.Type)
	assert.Equal(t, "-20000", out.Transaction.Amount.String())
	assert.Equal(t, "Restock Tepung Terigu (10 kg)", out.Transaction.Description)

	txs, err := store.Transactions().ListByBusiness(ctx, bizID, 0)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestMaterialUseCase_RestockCantidadInvalida(t *testing.T) {
	store := testutil.NewStore()
	uc := newMaterialUC(store)

	_, err := uc.Restock(context.Background(), bizID, "x", dto.RestockRequest{Quantity: dto.NewFlexNumber(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMaterialUseCase_RestockNoExiste(t *testing.T) {
	store := testutil.NewStore()
	uc := newMaterialUC(store)

	_, err := uc.Restock(context.Background(), bizID, "no-existe", dto.RestockRequest{
		Quantity: dto.NewFlexNumber(1), UnitPrice: dto.NewFlexNumber(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	txs, _ := store.Transactions().ListByBusiness(context.Background(), bizID, 0)
	assert.Empty(t, txs, "no debe quedar transacción si la reposición falla")
}

func TestMaterialUseCase_Summary(t *testing.T) {
	store := testutil.NewStore()
	uc := newMaterialUC(store)
	ctx := context.Background()

	for _, in := range []dto.CreateMaterialRequest{
		{Name: "Gula", Category: "Bahan Baku", Unit: "kg", Stock: dto.NewFlexNumber(0), PricePerUnit: dto.NewFlexNumber(15000)},
		{Name: "Kopi", Category: "Bahan Baku", Unit: "kg", Stock: dto.NewFlexNumber(3), PricePerUnit: dto.NewFlexNumber(80000)},
		{Name: "Cup", Category: "Kemasan", Unit: "pcs", Stock: dto.NewFlexNumber(500), PricePerUnit: dto.NewFlexNumber(500)},
	} {
		_, err := uc.Create(ctx, bizID, in)
		require.NoError(t, err)
	}

	s, err := uc.Summary(ctx, bizID)
	require.NoError(t, err)

	assert.Equal(t, 1, s.OutOfStockCount)
	assert.Equal(t, 1, s.LowStockCount)
	assert.Equal(t, 1, s.HealthyCount)
	assert.Equal(t, 33, s.StockHealthPercent)
	assert.True(t, decimal.NewFromInt(490000).Equal(s.TotalValue))
	require.Len(t, s.RestockPriority, 2)
	assert.Equal(t, "Gula", s.RestockPriority[0].Name)
	assert.Equal(t, usecase.StockStatusOut, s.RestockPriority[0].Status)
	assert.Equal(t, usecase.StockStatusLow, s.RestockPriority[1].Status)
}
