package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/application/dto"
	apppricing "github.com/bizness/bizness-api/internal/application/pricing"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/pricing"
	"github.com/bizness/bizness-api/internal/testutil"
)

func kopiSusu(withAI bool) dto.HPPCalculationRequest {
	return dto.HPPCalculationRequest{
		ProductName: "Kopi Susu Gula Aren",
		Materials: []dto.MaterialLineDTO{
			{Name: "Kopi", Unit: "kg", Price: dto.NewFlexNumber(50000)},
			{Name: "Susu", Unit: "liter", Price: dto.NewFlexNumber("30000")},
		},
		LaborCost:    dto.NewFlexNumber(20000),
		OverheadCost: dto.NewFlexNumber(10000),
		Quantity:     dto.NewFlexNumber(10),
		TargetMargin: dto.NewSignedFlexNumber(40),
		WithAI:       withAI,
	}
}

func TestCalculate_DesgloseYPrecio(t *testing.T) {
	uc := apppricing.NewCalculatorUseCase(nil, nil, time.Second, nil)

	out, err := uc.Calculate(context.Background(), kopiSusu(false))
	require.NoError(t, err)

	assert.Equal(t, "80000", out.Breakdown.MaterialsTotal.String())
	assert.Equal(t, "110000", out.Breakdown.TotalCost.String())
	assert.Equal(t, "11000", out.Breakdown.UnitCost.String())
	require.NotNil(t, out.Pricing.SellingPrice)
	assert.Equal(t, "18333.33", out.Pricing.SellingPrice.StringFixed(2))
	assert.Equal(t, dto.MarginStatusOK, out.Pricing.MarginStatus)
	assert.Len(t, out.Ladder, len(pricing.RecommendedMargins))
	assert.Empty(t, out.AIAnalysis)
	assert.Empty(t, out.AIError)
}

func TestCalculate_MargenDegenerado(t *testing.T) {
	uc := apppricing.NewCalculatorUseCase(nil, nil, time.Second, nil)
	in := kopiSusu(false)
	in.TargetMargin = dto.NewSignedFlexNumber(100)

	out, err := uc.Calculate(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, out.Pricing.SellingPrice)
	assert.Equal(t, dto.MarginStatusDegenerate, out.Pricing.MarginStatus)
}

func TestCalculate_ConAnalisisIA(t *testing.T) {
	llm := &testutil.FakeLLM{Reply: "  Harga sudah kompetitif.  "}
	uc := apppricing.NewCalculatorUseCase(llm, nil, time.Second, nil)

	out, err := uc.Calculate(context.Background(), kopiSusu(true))
	require.NoError(t, err)
	assert.Equal(t, "Harga sudah kompetitif.", out.AIAnalysis)
	require.Len(t, llm.Prompts, 1)
	assert.Contains(t, llm.Prompts[0], "nama produk = Kopi Susu Gula Aren")
	assert.Contains(t, llm.Prompts[0], "- nama bahan = Susu")
}

func TestCalculate_FalloIANoInterrumpe(t *testing.T) {
	llm := &testutil.FakeLLM{Err: errors.New("AI: Gemini error 400: API key quota exceeded")}
	uc := apppricing.NewCalculatorUseCase(llm, nil, time.Second, nil)

	out, err := uc.Calculate(context.Background(), kopiSusu(true))
	require.NoError(t, err)
	assert.Equal(t, apppricing.AIErrFailed, out.AIError)
	assert.NotContains(t, out.AIError, "Gemini")
	assert.NotNil(t, out.Pricing.SellingPrice)

	withoutLLM := apppricing.NewCalculatorUseCase(nil, nil, time.Second, nil)
	out, err = withoutLLM.Calculate(context.Background(), kopiSusu(true))
	require.NoError(t, err)
	assert.Equal(t, apppricing.AIErrUnavailable, out.AIError)
}

func TestCalculate_FalloIAMensajesFijos(t *testing.T) {
	unavailable := apppricing.NewCalculatorUseCase(&testutil.FakeLLM{Err: domain.ErrAIUnavailable}, nil, time.Second, nil)
	out, err := unavailable.Calculate(context.Background(), kopiSusu(true))
	require.NoError(t, err)
	assert.Equal(t, apppricing.AIErrUnavailable, out.AIError)

	slow := apppricing.NewCalculatorUseCase(&testutil.FakeLLM{Block: true}, nil, 10*time.Millisecond, nil)
	out, err = slow.Calculate(context.Background(), kopiSusu(true))
	require.NoError(t, err)
	assert.Equal(t, apppricing.AIErrTimeout, out.AIError)
}

func TestSellingPriceYMargin(t *testing.T) {
	uc := apppricing.NewCalculatorUseCase(nil, nil, time.Second, nil)

	p, err := uc.SellingPrice(dto.SellingPriceRequest{UnitCost: dto.NewFlexNumber("15000,5"), TargetMargin: dto.NewSignedFlexNumber(50)})
	require.NoError(t, err)
	require.NotNil(t, p.SellingPrice)

	_, err = uc.SellingPrice(dto.SellingPriceRequest{UnitCost: dto.NewFlexNumber(1000), TargetMargin: dto.NewSignedFlexNumber(120)})
	assert.ErrorIs(t, err, pricing.ErrDegenerateMargin)

	m := uc.Margin(dto.MarginRequest{UnitCost: dto.NewFlexNumber(10000), SellingPrice: dto.NewFlexNumber(25000)})
	assert.True(t, m.Defined)
	assert.Equal(t, "60", m.MarginPercent.String())

	undefined := uc.Margin(dto.MarginRequest{UnitCost: dto.NewFlexNumber(10000)})
	assert.False(t, undefined.Defined)
	assert.Nil(t, undefined.MarginPercent)
}
