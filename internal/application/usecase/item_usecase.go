package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// ItemUseCase casos de uso del catálogo de artículos. Las existencias se derivan de los movimientos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un nuevo artículo. Name y UnitBase son obligatorios.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.UnitBase)
	if name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Brand:     strings.TrimSpace(in.Brand),
		ItemType:  strings.TrimSpace(in.ItemType),
		Size:      strings.TrimSpace(in.Size),
		UnitBase:  unit,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista todos los artículos ordenados por nombre.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// Count total de artículos.
func (uc *ItemUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Brand:     it.Brand,
		ItemType:  it.ItemType,
		Size:      it.Size,
		UnitBase:  it.UnitBase,
		CreatedAt: it.CreatedAt,
	}
}
