package usecase

import (
	"context"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// DashboardRecentLimit cantidad de movimientos recientes en la página de inicio.
const DashboardRecentLimit = 5

// DashboardUseCase arma el resumen de la página de inicio.
type DashboardUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
}

func NewDashboardUseCase(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, movementRepo: movementRepo}
}

// GetSummary totales de artículos y movimientos más los últimos cinco movimientos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	totalItems, err := uc.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalMovements, err := uc.movementRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.movementRepo.List(ctx, DashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	last := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		last = append(last, ToMovementResponse(m))
	}
	return &dto.DashboardSummaryDTO{
		TotalItems:     totalItems,
		TotalMovements: totalMovements,
		LastMovements:  last,
	}, nil
}
