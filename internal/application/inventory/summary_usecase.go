package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen/internal/application/dto"
	stock "github.com/jhoicas/almacen/internal/domain/inventory"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// SummaryUseCase calcula las existencias actuales a partir del historial de movimientos.
type SummaryUseCase struct {
	repo     repository.InventoryRepository
	renderer StockSheetRenderer
}

// NewSummaryUseCase construye el caso de uso. renderer puede ser nil si no se expone el PDF.
func NewSummaryUseCase(repo repository.InventoryRepository, renderer StockSheetRenderer) *SummaryUseCase {
	return &SummaryUseCase{repo: repo, renderer: renderer}
}

// GetSummary devuelve una fila por (artículo, lote, unidad) con al menos un detalle registrado,
// ordenadas por nombre y lote.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) ([]dto.StockLineDTO, error) {
	rows, err := uc.repo.GroupedTotals(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := stock.Aggregate(rows)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.StockLineDTO{
			ItemID:   l.ItemID,
			Name:     l.ItemName,
			Lot:      l.Lot,
			Unit:     l.Unit,
			Quantity: l.Quantity,
		})
	}
	return out, nil
}

// RenderPDF genera la planilla de existencias.
func (uc *SummaryUseCase) RenderPDF(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("planilla PDF no configurada")
	}
	lines, err := uc.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderStockSheet(ctx, lines)
}
