//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	appinventory "github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
	"github.com/jhoicas/almacen/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen/pkg/config"
)

// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/... -v

type pgEnv struct {
	tx        *postgres.TxRunner
	users     *postgres.UserRepo
	items     *postgres.ItemRepo
	movements *postgres.MovementRepo
	inventory *postgres.InventoryRepo
	register  *appinventory.RegisterMovementUseCase
	userID    string
}

func setupPostgres(t *testing.T) *pgEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("almacen_test"),
		tcPostgres.WithUsername("almacen"),
		tcPostgres.WithPassword("almacen"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	// Idempotente
	require.NoError(t, postgres.Migrate(ctx, pool))

	env := &pgEnv{
		tx:        postgres.NewTxRunner(pool),
		users:     postgres.NewUserRepository(pool),
		items:     postgres.NewItemRepository(pool),
		movements: postgres.NewMovementRepository(pool),
		inventory: postgres.NewInventoryRepository(pool),
	}
	env.register = appinventory.NewRegisterMovementUseCase(env.tx, env.items)

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     "operador",
		PasswordHash: "x",
		Role:         entity.RoleOperator,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, env.users.Create(ctx, user))
	env.userID = user.ID
	return env
}

func (e *pgEnv) createItem(t *testing.T, name, unit string) string {
	t.Helper()
	item := &entity.Item{ID: uuid.New().String(), Name: name, UnitBase: unit, CreatedAt: time.Now().UTC()}
	require.NoError(t, e.items.Create(context.Background(), item))
	return item.ID
}

func (e *pgEnv) move(t *testing.T, typ, itemID, lot string, qty int64, unit string) *entity.Movement {
	t.Helper()
	m, err := e.register.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		UserID: e.userID,
		Type:   typ,
		Lines:  []appinventory.LineInput{{ItemID: itemID, Lot: lot, Quantity: decimal.NewFromInt(qty), Unit: unit}},
	})
	require.NoError(t, err)
	return m
}

func TestPostgres_FlujoCompleto(t *testing.T) {
	env := setupPostgres(t)
	ctx := context.Background()

	dup := &entity.User{ID: uuid.New().String(), Username: "operador", PasswordHash: "y", Role: entity.RoleOperator}
	assert.ErrorIs(t, env.users.Create(ctx, dup), domain.ErrAlreadyExists)

	harina := env.createItem(t, "Harina", "kg")

	_, found, err := env.movements.MaxMovementNo(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	first := env.move(t, "ENTRADA", harina, "L1", 100, "kg")
	second := env.move(t, "SALIDA", harina, "L1", 30, "kg")
	assert.Equal(t, 4201, first.MovementNo)
	assert.Equal(t, 4202, second.MovementNo)

	rows, err := env.inventory.GroupedTotals(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	list, err := env.movements.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 4202, list[0].MovementNo)
	assert.Equal(t, "operador", list[0].Username)
	require.Len(t, list[0].Lines, 1)
	assert.Equal(t, "Harina", list[0].Lines[0].ItemName)
	assert.True(t, list[0].Lines[0].Quantity.Equal(decimal.NewFromInt(30)))

	summary := appinventory.NewSummaryUseCase(env.inventory, nil)
	lines, err := summary.GetSummary(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Quantity.Equal(decimal.NewFromInt(70)))
}

func TestPostgres_ArticuloInexistenteNoDejaRastro(t *testing.T) {
	env := setupPostgres(t)
	ctx := context.Background()

	m := &entity.Movement{
		ID:         uuid.New().String(),
		MovementNo: 4201,
		Type:       entity.MovementEntrada,
		Date:       time.Now().UTC(),
		UserID:     env.userID,
		Details: []entity.MovementDetail{{
			ID: uuid.New().String(), ItemID: uuid.New().String(), Quantity: decimal.NewFromInt(1), Unit: "u",
		}},
	}
	err := env.tx.Run(ctx, func(repo repository.MovementRepository) error {
		return repo.Create(ctx, m)
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Un item_id que no es UUID es "no existe", no un error de cast
	_, err = env.register.RegisterMovement(ctx, appinventory.MovementInputDTO{
		UserID: env.userID,
		Type:   "ENTRADA",
		Lines:  []appinventory.LineInput{{ItemID: "no-existe", Quantity: decimal.NewFromInt(1), Unit: "u"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := env.movements.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPostgres_NumeracionConcurrente(t *testing.T) {
	env := setupPostgres(t)
	item := env.createItem(t, "Azúcar", "kg")

	const workers = 8
	var wg sync.WaitGroup
	nums := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := env.register.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
				UserID: env.userID,
				Type:   "ENTRADA",
				Lines:  []appinventory.LineInput{{ItemID: item, Quantity: decimal.NewFromInt(1), Unit: "kg"}},
			})
			if assert.NoError(t, err) {
				nums <- m.MovementNo
			}
		}()
	}
	wg.Wait()
	close(nums)

	seen := map[int]bool{}
	for n := range nums {
		assert.False(t, seen[n], "número repetido %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
	for n := 4201; n < 4201+workers; n++ {
		assert.True(t, seen[n], "falta el número %d", n)
	}
}
