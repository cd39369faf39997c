package dto

import "time"

// CreateItemRequest entrada para crear un artículo (form /items/new).
type CreateItemRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=150"`
	Brand    string `json:"brand" form:"brand" validate:"max=100"`
	ItemType string `json:"item_type" form:"item_type" validate:"max=100"`
	Size     string `json:"size" form:"size" validate:"max=100"`
	UnitBase string `json:"unit_base" form:"unit_base" validate:"required,max=10"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	ItemType  string    `json:"item_type,omitempty"`
	Size      string    `json:"size,omitempty"`
	UnitBase  string    `json:"unit_base"`
	CreatedAt time.Time `json:"created_at"`
}
