package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// RegisterMovementFromForm adapta el formulario (una sola línea) al caso de uso RegisterMovement.
// Una cantidad que no es un número válido devuelve domain.ErrInvalidInput.
func (uc *RegisterMovementUseCase) RegisterMovementFromForm(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	quantity, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(in.Quantity, ",", ".")))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	input := MovementInputDTO{
		UserID:   userID,
		Type:     in.MovementType,
		Supplier: in.Supplier,
		Customer: in.Customer,
		Note:     in.Note,
		Lines: []LineInput{{
			ItemID:   in.ItemID,
			Lot:      in.Lot,
			Quantity: quantity,
			Unit:     in.Unit,
		}},
	}
	return uc.RegisterMovement(ctx, input)
}
