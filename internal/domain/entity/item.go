package entity

import "time"

// Item representa un artículo del catálogo. Name y UnitBase son obligatorios.
type Item struct {
	ID        string
	Name      string
	Brand     string
	ItemType  string
	Size      string
	UnitBase  string // unidad de medida base (kg, und, lt...)
	CreatedAt time.Time
}
