// Package memory implementa los puertos de persistencia en memoria. Se usa con
// STORAGE_DRIVER=memory (demo local) y en los tests de handlers y casos de uso.
// Respeta las mismas restricciones que el schema de PostgreSQL: username y movement_no
// únicos, y detalles que apuntan a artículos existentes.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/inventory"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu          sync.RWMutex
	users       map[string]entity.User
	usernames   map[string]string // username -> id
	items       map[string]entity.Item
	movements   []entity.Movement // orden de inserción
	movementNos map[int]struct{}
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		users:       map[string]entity.User{},
		usernames:   map[string]string{},
		items:       map[string]entity.Item{},
		movementNos: map[int]struct{}{},
	}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Items repositorio de artículos.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

// Movements repositorio de movimientos fuera de transacción (lecturas).
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Inventory consulta agrupada de existencias.
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{s: s} }

// TxRunner runner de transacciones sobre este store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// checkMovement valida las restricciones de un movimiento contra el estado. Requiere el lock.
func (s *Store) checkMovement(m *entity.Movement, staged []entity.Movement) error {
	if !m.Type.Valid() {
		return fmt.Errorf("memory: tipo de movimiento inválido %q", m.Type)
	}
	if _, ok := s.users[m.UserID]; !ok {
		return domain.ErrNotFound
	}
	if _, dup := s.movementNos[m.MovementNo]; dup {
		return domain.ErrDuplicate
	}
	for _, st := range staged {
		if st.MovementNo == m.MovementNo {
			return domain.ErrDuplicate
		}
	}
	for _, d := range m.Details {
		if _, ok := s.items[d.ItemID]; !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

// applyMovement guarda una copia del movimiento. Requiere el lock de escritura.
func (s *Store) applyMovement(m entity.Movement) {
	s.movements = append(s.movements, m)
	s.movementNos[m.MovementNo] = struct{}{}
}

// maxMovementNo requiere al menos el lock de lectura.
func (s *Store) maxMovementNo(staged []entity.Movement) (int, bool) {
	maxNo, found := 0, false
	for no := range s.movementNos {
		if !found || no > maxNo {
			maxNo, found = no, true
		}
	}
	for _, m := range staged {
		if !found || m.MovementNo > maxNo {
			maxNo, found = m.MovementNo, true
		}
	}
	return maxNo, found
}

// listMovements requiere al menos el lock de lectura.
func (s *Store) listMovements(limit int) []*entity.MovementView {
	sorted := make([]entity.Movement, len(s.movements))
	copy(sorted, s.movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].MovementNo > sorted[j].MovementNo
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]*entity.MovementView, 0, len(sorted))
	for _, m := range sorted {
		v := &entity.MovementView{Movement: m, Username: s.users[m.UserID].Username}
		v.Details = nil
		for _, d := range m.Details {
			v.Lines = append(v.Lines, entity.MovementLineView{
				ItemID:   d.ItemID,
				ItemName: s.items[d.ItemID].Name,
				Lot:      d.Lot,
				Quantity: d.Quantity,
				Unit:     d.Unit,
			})
		}
		sort.SliceStable(v.Lines, func(i, j int) bool { return v.Lines[i].ItemName < v.Lines[j].ItemName })
		out = append(out, v)
	}
	return out
}

type groupKey struct {
	itemID, lot, unit string
	typ               entity.MovementType
}

// groupedTotals requiere al menos el lock de lectura.
func (s *Store) groupedTotals() []inventory.GroupedRow {
	sums := map[groupKey]decimal.Decimal{}
	var order []groupKey
	for _, m := range s.movements {
		for _, d := range m.Details {
			k := groupKey{itemID: d.ItemID, lot: d.Lot, unit: d.Unit, typ: m.Type}
			cur, ok := sums[k]
			if !ok {
				order = append(order, k)
			}
			sums[k] = cur.Add(d.Quantity)
		}
	}
	rows := make([]inventory.GroupedRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, inventory.GroupedRow{
			ItemID:   k.itemID,
			ItemName: s.items[k.itemID].Name,
			Lot:      k.lot,
			Unit:     k.unit,
			Type:     string(k.typ),
			Quantity: sums[k],
		})
	}
	return rows
}

func cloneMovement(m *entity.Movement) entity.Movement {
	c := *m
	c.Details = make([]entity.MovementDetail, len(m.Details))
	copy(c.Details, m.Details)
	for i := range c.Details {
		c.Details[i].MovementID = m.ID
	}
	return c
}
