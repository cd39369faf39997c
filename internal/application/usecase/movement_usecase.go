package usecase

import (
	"context"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// MovementUseCase consultas sobre el historial de movimientos.
type MovementUseCase struct {
	repo repository.MovementRepository
}

func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve los movimientos más recientes primero. limit <= 0 devuelve todos.
func (uc *MovementUseCase) List(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	list, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ToMovementResponse convierte la vista de lectura al DTO de salida.
func ToMovementResponse(m *entity.MovementView) dto.MovementResponse {
	lines := make([]dto.MovementLineResponse, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, dto.MovementLineResponse{
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Lot:      l.Lot,
			Quantity: l.Quantity,
			Unit:     l.Unit,
		})
	}
	return dto.MovementResponse{
		ID:         m.ID,
		MovementNo: m.MovementNo,
		Type:       m.Type.String(),
		Date:       m.Date,
		Username:   m.Username,
		Supplier:   m.Supplier,
		Customer:   m.Customer,
		Note:       m.Note,
		Lines:      lines,
	}
}
