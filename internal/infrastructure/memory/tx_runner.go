package memory

import (
	"context"

	appinventory "github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ appinventory.TxRunner = (*TxRunner)(nil)

type memTx struct {
	staged []entity.Movement
}

// TxRunner serializa las transacciones con el lock de escritura del store.
// Si fn devuelve error no se aplica ninguna escritura.
type TxRunner struct{ s *Store }

func (t *TxRunner) Run(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memTx{}
	if err := fn(&MovementRepo{s: t.s, tx: tx}); err != nil {
		return err
	}
	for _, m := range tx.staged {
		t.s.applyMovement(m)
	}
	return nil
}
