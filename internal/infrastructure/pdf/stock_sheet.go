// Package pdf genera la planilla de existencias del almacén con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación        │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Artículo | Lote | Unidad | Cantidad  │
//	│  ──────────────────────────────────────────  │
//	│  FOOTER: total de filas                      │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen/internal/application/dto"
	appinventory "github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/pkg/numfmt"
)

var _ appinventory.StockSheetRenderer = (*StockSheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 20, Blue: 20}
)

// StockSheetGenerator implementa inventory.StockSheetRenderer.
type StockSheetGenerator struct {
	title string
	now   func() time.Time
}

// NewStockSheetGenerator construye el generador. title va en el encabezado (nombre de la app).
func NewStockSheetGenerator(title string) *StockSheetGenerator {
	return &StockSheetGenerator{title: title, now: time.Now}
}

// RenderStockSheet genera el PDF y devuelve sus bytes.
func (g *StockSheetGenerator) RenderStockSheet(_ context.Context, lines []dto.StockLineDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario actual", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(lines) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	m.AddRows(tableRows(lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d filas", len(lines)), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar planilla: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Inventario actual", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 5, align.Left),
		h("Lote", 3, align.Left),
		h("Unidad", 2, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

// tableRows una fila por (artículo, lote, unidad). Las existencias negativas van en rojo.
func tableRows(lines []dto.StockLineDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		qty := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if l.Quantity.IsNegative() {
			qty.Color = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(nonEmpty(l.Lot, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(numfmt.Quantity(l.Quantity), qty)),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
