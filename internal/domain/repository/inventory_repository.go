package repository

import (
	"context"

	"github.com/jhoicas/almacen/internal/domain/inventory"
)

// InventoryRepository expone la consulta agrupada sobre movement_details.
// Las implementaciones son read-only.
type InventoryRepository interface {
	// GroupedTotals suma cantidades por (artículo, nombre, lote, unidad, tipo de movimiento).
	GroupedTotals(ctx context.Context) ([]inventory.GroupedRow, error)
}
