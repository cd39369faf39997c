// Package inventory contiene los servicios de dominio del inventario: el cálculo de existencias
// a partir del historial de movimientos y la numeración de movimientos.
package inventory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// ErrUnknownMovementType se devuelve cuando el historial contiene un tipo fuera de ENTRADA/SALIDA.
var ErrUnknownMovementType = errors.New("tipo de movimiento desconocido en el historial")

// GroupedRow es una fila del store ya sumada por (artículo, nombre, lote, unidad, tipo).
type GroupedRow struct {
	ItemID   string
	ItemName string
	Lot      string
	Unit     string
	Type     string
	Quantity decimal.Decimal
}

// StockLine es la existencia neta de un (artículo, lote, unidad).
type StockLine struct {
	ItemID   string
	ItemName string
	Lot      string
	Unit     string
	Quantity decimal.Decimal
}

type stockKey struct {
	itemID, name, lot, unit string
}

// Aggregate neta entradas contra salidas por (artículo, nombre, lote, unidad).
// Toda clave presente en rows aparece exactamente una vez, aunque su total sea cero o negativo.
// El resultado va ordenado por (nombre, lote); unidad e ID desempatan.
func Aggregate(rows []GroupedRow) ([]StockLine, error) {
	totals := make(map[stockKey]decimal.Decimal, len(rows))
	for _, r := range rows {
		t, err := entity.ParseMovementType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (artículo %s)", ErrUnknownMovementType, r.Type, r.ItemID)
		}
		k := stockKey{itemID: r.ItemID, name: r.ItemName, lot: r.Lot, unit: r.Unit}
		totals[k] = totals[k].Add(t.Sign().Mul(r.Quantity))
	}

	lines := make([]StockLine, 0, len(totals))
	for k, qty := range totals {
		lines = append(lines, StockLine{
			ItemID:   k.itemID,
			ItemName: k.name,
			Lot:      k.lot,
			Unit:     k.unit,
			Quantity: qty,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		if a.Lot != b.Lot {
			return a.Lot < b.Lot
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.ItemID < b.ItemID
	})
	return lines, nil
}
