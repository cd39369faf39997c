package repository

import (
	"context"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// List devuelve todos los artículos ordenados por nombre.
	List(ctx context.Context) ([]*entity.Item, error)
	Count(ctx context.Context) (int, error)
}
