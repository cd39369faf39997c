package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/inventory"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var (
	_ repository.UserRepository      = (*UserRepo)(nil)
	_ repository.ItemRepository      = (*ItemRepo)(nil)
	_ repository.MovementRepository  = (*MovementRepo)(nil)
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
)

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, taken := r.s.usernames[user.Username]; taken {
		return domain.ErrAlreadyExists
	}
	r.s.users[user.ID] = *user
	r.s.usernames[user.Username] = user.ID
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.usernames[username]
	if !ok {
		return nil, nil
	}
	u := r.s.users[id]
	return &u, nil
}

// ItemRepo artículos en memoria.
type ItemRepo struct{ s *Store }

func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, dup := r.s.items[item.ID]; dup {
		return domain.ErrDuplicate
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		it := it
		list = append(list, &it)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *ItemRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items), nil
}

// MovementRepo movimientos en memoria. Con tx != nil opera bajo el lock que tomó TxRunner.Run
// y las escrituras quedan pendientes hasta el commit.
type MovementRepo struct {
	s  *Store
	tx *memTx
}

func (r *MovementRepo) read(fn func()) {
	if r.tx == nil {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	fn()
}

func (r *MovementRepo) staged() []entity.Movement {
	if r.tx == nil {
		return nil
	}
	return r.tx.staged
}

// LockNumbering no hace nada: dentro de Run el lock de escritura ya está tomado.
func (r *MovementRepo) LockNumbering(_ context.Context) error { return nil }

func (r *MovementRepo) MaxMovementNo(_ context.Context) (maxNo int, found bool, err error) {
	r.read(func() { maxNo, found = r.s.maxMovementNo(r.staged()) })
	return maxNo, found, nil
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.tx != nil {
		if err := r.s.checkMovement(m, r.tx.staged); err != nil {
			return err
		}
		r.tx.staged = append(r.tx.staged, cloneMovement(m))
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkMovement(m, nil); err != nil {
		return err
	}
	r.s.applyMovement(cloneMovement(m))
	return nil
}

func (r *MovementRepo) List(_ context.Context, limit int) (list []*entity.MovementView, err error) {
	r.read(func() { list = r.s.listMovements(limit) })
	return list, nil
}

func (r *MovementRepo) Count(_ context.Context) (n int, err error) {
	r.read(func() { n = len(r.s.movements) + len(r.staged()) })
	return n, nil
}

// InventoryRepo consulta agrupada en memoria.
type InventoryRepo struct{ s *Store }

func (r *InventoryRepo) GroupedTotals(_ context.Context) ([]inventory.GroupedRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.groupedTotals(), nil
}
