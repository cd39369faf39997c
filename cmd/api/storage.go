package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen/internal/application/inventory"
	"github.com/jhoicas/almacen/internal/domain/repository"
	"github.com/jhoicas/almacen/internal/infrastructure/memory"
	"github.com/jhoicas/almacen/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen/pkg/config"
)

// storage agrupa los adaptadores de persistencia elegidos por STORAGE_DRIVER.
type storage struct {
	users     repository.UserRepository
	items     repository.ItemRepository
	movements repository.MovementRepository
	inventory repository.InventoryRepository
	txRunner  inventory.TxRunner
	close     func()
}

func openStorage(ctx context.Context, cfg config.DBConfig) (*storage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		s := memory.New()
		return &storage{
			users:     s.Users(),
			items:     s.Items(),
			movements: s.Movements(),
			inventory: s.Inventory(),
			txRunner:  s.TxRunner(),
			close:     func() {},
		}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			users:     postgres.NewUserRepository(pool),
			items:     postgres.NewItemRepository(pool),
			movements: postgres.NewMovementRepository(pool),
			inventory: postgres.NewInventoryRepository(pool),
			txRunner:  postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
	}
}
