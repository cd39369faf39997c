package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	stock "github.com/jhoicas/almacen/internal/domain/inventory"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// RegisterMovementUseCase registra un movimiento y sus líneas en una sola transacción,
// asignando el número bajo el lock de numeración.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// LineInput una línea del movimiento.
type LineInput struct {
	ItemID   string
	Lot      string
	Quantity decimal.Decimal
	Unit     string
}

// MovementInputDTO entrada para registrar un movimiento.
// Type debe ser ENTRADA o SALIDA; Lines lleva al menos una línea.
type MovementInputDTO struct {
	UserID   string
	Type     string
	Supplier string
	Customer string
	Note     string
	Lines    []LineInput
}

// RegisterMovement valida la entrada, comprueba que los artículos existan y, dentro de la
// transacción, bloquea la numeración, calcula max+1 e inserta movimiento y detalles.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.Movement, error) {
	movType, err := entity.ParseMovementType(input.Type)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if input.UserID == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range input.Lines {
		if strings.TrimSpace(l.ItemID) == "" || strings.TrimSpace(l.Unit) == "" {
			return nil, domain.ErrInvalidInput
		}
		if !l.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar que los artículos existan antes de abrir la transacción
	seen := make(map[string]bool, len(input.Lines))
	for _, l := range input.Lines {
		if seen[l.ItemID] {
			continue
		}
		item, err := uc.itemRepo.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		seen[l.ItemID] = true
	}

	mov := &entity.Movement{
		ID:       uuid.New().String(),
		Type:     movType,
		UserID:   input.UserID,
		Supplier: strings.TrimSpace(input.Supplier),
		Customer: strings.TrimSpace(input.Customer),
		Note:     strings.TrimSpace(input.Note),
	}
	for _, l := range input.Lines {
		mov.Details = append(mov.Details, entity.MovementDetail{
			ID:         uuid.New().String(),
			MovementID: mov.ID,
			ItemID:     l.ItemID,
			Lot:        strings.TrimSpace(l.Lot),
			Quantity:   l.Quantity,
			Unit:       strings.TrimSpace(l.Unit),
		})
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository) error {
		if err := movRepo.LockNumbering(ctx); err != nil {
			return err
		}
		maxNo, found, err := movRepo.MaxMovementNo(ctx)
		if err != nil {
			return err
		}
		mov.MovementNo = stock.NextMovementNo(maxNo, found)
		// La fecha se fija bajo el lock para que el orden por fecha coincida con la numeración
		mov.Date = uc.now()
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
