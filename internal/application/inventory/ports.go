package inventory

import (
	"context"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio de
// movimientos atado a esa tx. Movimiento, detalles y número se confirman o descartan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error
}

// StockSheetRenderer genera la planilla de existencias (PDF).
type StockSheetRenderer interface {
	RenderStockSheet(ctx context.Context, lines []dto.StockLineDTO) ([]byte, error)
}
