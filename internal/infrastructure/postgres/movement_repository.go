package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// numberingLockKey llave del advisory lock que serializa la numeración de movimientos.
const numberingLockKey int64 = 42000001

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// LockNumbering toma pg_advisory_xact_lock; se libera al terminar la transacción.
// Fuera de una transacción no serializa nada.
func (r *MovementRepo) LockNumbering(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, numberingLockKey); err != nil {
		return fmt.Errorf("lock numbering: %w", err)
	}
	return nil
}

// MaxMovementNo devuelve el mayor movement_no; found=false si la tabla está vacía.
func (r *MovementRepo) MaxMovementNo(ctx context.Context) (int, bool, error) {
	var maxNo *int
	if err := r.q.QueryRow(ctx, `SELECT MAX(movement_no) FROM movements`).Scan(&maxNo); err != nil {
		return 0, false, fmt.Errorf("max movement_no: %w", err)
	}
	if maxNo == nil {
		return 0, false, nil
	}
	return *maxNo, true, nil
}

// Create inserta el movimiento y sus detalles. Debe llamarse dentro de TxRunner.Run.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO movements (id, movement_no, movement_type, date, user_id, supplier, customer, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.MovementNo, string(m.Type), m.Date, m.UserID,
		nullIfEmpty(m.Supplier), nullIfEmpty(m.Customer), nullIfEmpty(m.Note),
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	for _, d := range m.Details {
		_, err := r.q.Exec(ctx, `
			INSERT INTO movement_details (id, movement_id, item_id, lot, quantity, unit)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID, m.ID, d.ItemID, nullIfEmpty(d.Lot), d.Quantity, d.Unit,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert movement detail: %w", err)
		}
	}
	return nil
}

// List devuelve los movimientos más recientes primero con usuario y líneas. limit <= 0 = todos.
func (r *MovementRepo) List(ctx context.Context, limit int) ([]*entity.MovementView, error) {
	// LIMIT NULL equivale a sin límite
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.q.Query(ctx, `
		SELECT m.id, m.movement_no, m.movement_type, m.date, m.user_id, COALESCE(u.username, ''),
		       COALESCE(m.supplier, ''), COALESCE(m.customer, ''), COALESCE(m.note, '')
		FROM movements m
		LEFT JOIN users u ON u.id = m.user_id
		ORDER BY m.date DESC, m.movement_no DESC
		LIMIT $1`, lim)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	var list []*entity.MovementView
	index := make(map[string]*entity.MovementView)
	for rows.Next() {
		var v entity.MovementView
		var movType string
		if err := rows.Scan(&v.ID, &v.MovementNo, &movType, &v.Date, &v.UserID, &v.Username,
			&v.Supplier, &v.Customer, &v.Note); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		v.Type = entity.MovementType(movType)
		list = append(list, &v)
		index[v.ID] = &v
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, v := range list {
		ids = append(ids, v.ID)
	}
	detailRows, err := r.q.Query(ctx, `
		SELECT d.movement_id::text, d.item_id, i.name, COALESCE(d.lot, ''), d.quantity, d.unit
		FROM movement_details d
		JOIN items i ON i.id = d.item_id
		WHERE d.movement_id::text = ANY($1::text[])
		ORDER BY d.movement_id, i.name, d.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list movement details: %w", err)
	}
	defer detailRows.Close()
	for detailRows.Next() {
		var movementID string
		var l entity.MovementLineView
		if err := detailRows.Scan(&movementID, &l.ItemID, &l.ItemName, &l.Lot, &l.Quantity, &l.Unit); err != nil {
			return nil, fmt.Errorf("scan movement detail: %w", err)
		}
		if v, ok := index[movementID]; ok {
			v.Lines = append(v.Lines, l)
		}
	}
	return list, detailRows.Err()
}

// Count total de movimientos.
func (r *MovementRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
