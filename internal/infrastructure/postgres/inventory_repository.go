package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen/internal/domain/inventory"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo consulta agrupada de existencias sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GroupedTotals suma las cantidades de los detalles por artículo, lote, unidad y tipo.
// El signo lo aplica inventory.Aggregate.
func (r *InventoryRepo) GroupedTotals(ctx context.Context) ([]inventory.GroupedRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.name, COALESCE(d.lot, '') AS lot, d.unit, m.movement_type, SUM(d.quantity)
		FROM movement_details d
		JOIN movements m ON m.id = d.movement_id
		JOIN items i ON i.id = d.item_id
		GROUP BY i.id, i.name, COALESCE(d.lot, ''), d.unit, m.movement_type`)
	if err != nil {
		return nil, fmt.Errorf("grouped totals: %w", err)
	}
	defer rows.Close()
	var out []inventory.GroupedRow
	for rows.Next() {
		var g inventory.GroupedRow
		if err := rows.Scan(&g.ItemID, &g.ItemName, &g.Lot, &g.Unit, &g.Type, &g.Quantity); err != nil {
			return nil, fmt.Errorf("scan grouped row: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
