package repository

import (
	"context"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	// Create devuelve domain.ErrAlreadyExists si el username ya está tomado.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
