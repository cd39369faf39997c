package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest form de /movements/new: un movimiento con exactamente una línea.
// Quantity llega como texto y se valida como decimal en el caso de uso.
type RegisterMovementRequest struct {
	MovementType string `json:"movement_type" form:"movement_type" validate:"required,oneof=ENTRADA SALIDA"`
	Supplier     string `json:"supplier" form:"supplier" validate:"max=150"`
	Customer     string `json:"customer" form:"customer" validate:"max=150"`
	Note         string `json:"note" form:"note"`
	ItemID       string `json:"item_id" form:"item_id" validate:"required"`
	Lot          string `json:"lot" form:"lot" validate:"max=100"`
	Quantity     string `json:"quantity" form:"quantity" validate:"required"`
	Unit         string `json:"unit" form:"unit" validate:"required,max=10"`
}

// MovementLineResponse línea de un movimiento.
type MovementLineResponse struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Lot      string          `json:"lot,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// MovementResponse salida de un movimiento con su usuario y líneas.
type MovementResponse struct {
	ID         string                 `json:"id"`
	MovementNo int                    `json:"movement_no"`
	Type       string                 `json:"movement_type"`
	Date       time.Time              `json:"date"`
	Username   string                 `json:"username,omitempty"`
	Supplier   string                 `json:"supplier,omitempty"`
	Customer   string                 `json:"customer,omitempty"`
	Note       string                 `json:"note,omitempty"`
	Lines      []MovementLineResponse `json:"lines"`
}
