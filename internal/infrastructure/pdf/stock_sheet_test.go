package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/dto"
)

func TestRenderStockSheet(t *testing.T) {
	g := NewStockSheetGenerator("Almacén")
	g.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	out, err := g.RenderStockSheet(context.Background(), []dto.StockLineDTO{
		{ItemID: "1", Name: "Harina", Lot: "L1", Unit: "kg", Quantity: decimal.NewFromInt(70)},
		{ItemID: "2", Name: "Azúcar", Unit: "kg", Quantity: decimal.NewFromInt(-3)},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestRenderStockSheet_Vacio(t *testing.T) {
	out, err := NewStockSheetGenerator("Almacén").RenderStockSheet(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
