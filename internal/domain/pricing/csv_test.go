package pricing_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/domain/pricing"
)

func TestToCsvRow(t *testing.T) {
	row := pricing.ToCsvRow(pricing.NewProduct("1", "Kopi Susu", "Minuman", "10000", 25000, 100))
	assert.Equal(t, []string{"Kopi Susu", "Minuman", "10000", "25000", "100", "60.0"}, row)
}

func TestToCsvRow_MargenIndefinido(t *testing.T) {
	row := pricing.ToCsvRow(pricing.NewProduct("1", "Sampel", "Lain", 5000, 0, 3))
	assert.Equal(t, pricing.UndefinedMargin, row[5])
}

func TestToCsvRow_MargenUnDecimal(t *testing.T) {
	row := pricing.ToCsvRow(pricing.NewProduct("1", "Roti", "Makanan", 7000, 9000, 1))
	// 2000/9000 = 22.222…
	assert.Equal(t, "22.2", row[5])
}

func TestEncodeCsvRow_EntradasAdversas(t *testing.T) {
	names := []string{
		`Kopi, "Spesial"`,
		`Teh "Manis"`,
		"Kue\nLapis",
		"Kue\r\nBasah, enak",
		`""`,
		" espacio inicial",
		"simple",
	}
	for _, name := range names {
		p := pricing.NewProduct("1", name, `Kat, "A"`, 1000, 2000, 5)
		line, err := pricing.EncodeCsvRow(pricing.ToCsvRow(p))
		require.NoError(t, err)

		rec, err := csv.NewReader(strings.NewReader(line)).Read()
		require.NoError(t, err, "línea: %q", line)
		// encoding/csv normaliza \r\n dentro de campos entrecomillados a \n
		assert.Equal(t, strings.ReplaceAll(name, "\r\n", "\n"), rec[0])
		assert.Equal(t, `Kat, "A"`, rec[1])
	}
}

func TestEncodeCsvRow_EscapeDeComillas(t *testing.T) {
	line, err := pricing.EncodeCsvRow([]string{`Kopi, "Spesial"`, "Minuman"})
	require.NoError(t, err)
	assert.Equal(t, `"Kopi, ""Spesial""",Minuman`+"\n", line)
}

func TestWriteProductsCsv(t *testing.T) {
	products := []pricing.Product{
		pricing.NewProduct("1", `Kopi, "Spesial"`, "Minuman", 10000, 25000, 100),
		pricing.NewProduct("2", "Keripik", "Snack", 3000, 0, 0),
	}
	var buf bytes.Buffer
	require.NoError(t, pricing.WriteProductsCsv(&buf, products))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\uFEFF"), "debe iniciar con BOM")

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, pricing.CsvHeader, records[0])
	assert.Equal(t, []string{`Kopi, "Spesial"`, "Minuman", "10000", "25000", "100", "60.0"}, records[1])
	assert.Equal(t, []string{"Keripik", "Snack", "3000", "0", "0", "N/A"}, records[2])
}
