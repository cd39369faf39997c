package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/domain/inventory"
)

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAggregate_EntradaMenosSalida(t *testing.T) {
	rows := []inventory.GroupedRow{
		{ItemID: "x", ItemName: "Bolsa 5kg", Lot: "L1", Unit: "kg", Type: "ENTRADA", Quantity: qty("100")},
		{ItemID: "x", ItemName: "Bolsa 5kg", Lot: "L1", Unit: "kg", Type: "SALIDA", Quantity: qty("30")},
	}

	lines, err := inventory.Aggregate(rows)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "x", lines[0].ItemID)
	assert.Equal(t, "L1", lines[0].Lot)
	assert.Equal(t, "kg", lines[0].Unit)
	assert.True(t, lines[0].Quantity.Equal(qty("70")), "got %s", lines[0].Quantity)
}

func TestAggregate_SoloEntradas(t *testing.T) {
	lines, err := inventory.Aggregate([]inventory.GroupedRow{
		{ItemID: "x", ItemName: "Harina", Unit: "kg", Type: "ENTRADA", Quantity: qty("12.5")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Quantity.Equal(qty("12.5")))
}

func TestAggregate_CeroYNegativoSeConservan(t *testing.T) {
	lines, err := inventory.Aggregate([]inventory.GroupedRow{
		{ItemID: "a", ItemName: "Azúcar", Unit: "kg", Type: "ENTRADA", Quantity: qty("10")},
		{ItemID: "a", ItemName: "Azúcar", Unit: "kg", Type: "SALIDA", Quantity: qty("10")},
		{ItemID: "b", ItemName: "Sal", Unit: "kg", Type: "SALIDA", Quantity: qty("4")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Quantity.IsZero())
	assert.True(t, lines[1].Quantity.Equal(qty("-4")))
}

func TestAggregate_LotesYUnidadesSonFilasIndependientes(t *testing.T) {
	lines, err := inventory.Aggregate([]inventory.GroupedRow{
		{ItemID: "x", ItemName: "Arroz", Lot: "L2", Unit: "kg", Type: "ENTRADA", Quantity: qty("5")},
		{ItemID: "x", ItemName: "Arroz", Lot: "L1", Unit: "kg", Type: "ENTRADA", Quantity: qty("3")},
		{ItemID: "x", ItemName: "Arroz", Lot: "L1", Unit: "saco", Type: "ENTRADA", Quantity: qty("1")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"L1", "L1", "L2"}, []string{lines[0].Lot, lines[1].Lot, lines[2].Lot})
	assert.Equal(t, "kg", lines[0].Unit)
	assert.Equal(t, "saco", lines[1].Unit)
}

func TestAggregate_OrdenPorNombreYLoteConVacios(t *testing.T) {
	lines, err := inventory.Aggregate([]inventory.GroupedRow{
		{ItemID: "2", ItemName: "Bolsa", Lot: "B", Unit: "und", Type: "ENTRADA", Quantity: qty("1")},
		{ItemID: "1", ItemName: "Aceite", Lot: "", Unit: "lt", Type: "ENTRADA", Quantity: qty("1")},
		{ItemID: "2", ItemName: "Bolsa", Lot: "", Unit: "und", Type: "ENTRADA", Quantity: qty("1")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "Aceite", lines[0].ItemName)
	assert.Equal(t, "", lines[1].Lot)
	assert.Equal(t, "B", lines[2].Lot)
}

func TestAggregate_TipoDesconocidoEsError(t *testing.T) {
	_, err := inventory.Aggregate([]inventory.GroupedRow{
		{ItemID: "x", ItemName: "Arroz", Unit: "kg", Type: "AJUSTE", Quantity: qty("1")},
	})
	assert.ErrorIs(t, err, inventory.ErrUnknownMovementType)
}

func TestAggregate_SinFilas(t *testing.T) {
	lines, err := inventory.Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// La salida por clave debe ser Σ ENTRADA - Σ SALIDA para cualquier secuencia.
func TestAggregate_PropiedadSumaConSigno(t *testing.T) {
	var rows []inventory.GroupedRow
	want := map[string]decimal.Decimal{}
	for i := 0; i < 40; i++ {
		lot := []string{"", "L1", "L2"}[i%3]
		typ := "ENTRADA"
		sign := decimal.NewFromInt(1)
		if i%4 == 0 {
			typ = "SALIDA"
			sign = decimal.NewFromInt(-1)
		}
		q := decimal.NewFromInt(int64(i + 1))
		rows = append(rows, inventory.GroupedRow{ItemID: "x", ItemName: "X", Lot: lot, Unit: "kg", Type: typ, Quantity: q})
		want[lot] = want[lot].Add(sign.Mul(q))
	}

	lines, err := inventory.Aggregate(rows)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.True(t, want[l.Lot].Equal(l.Quantity), "lote %q: want %s got %s", l.Lot, want[l.Lot], l.Quantity)
	}
}
