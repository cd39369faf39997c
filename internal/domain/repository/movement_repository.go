package repository

import (
	"context"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para Movement y sus detalles.
// Las escrituras se hacen dentro de un TxRunner para que movimiento y detalles sean atómicos.
type MovementRepository interface {
	// LockNumbering serializa la asignación de números hasta el fin de la transacción.
	LockNumbering(ctx context.Context) error
	// MaxMovementNo devuelve el mayor número persistido; found=false si no hay movimientos.
	MaxMovementNo(ctx context.Context) (max int, found bool, err error)
	// Create inserta el movimiento y todas sus líneas. Un artículo inexistente devuelve domain.ErrNotFound.
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve los movimientos más recientes primero; limit <= 0 significa todos.
	List(ctx context.Context, limit int) ([]*entity.MovementView, error)
	Count(ctx context.Context) (int, error)
}
