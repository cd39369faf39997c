package dto

import "github.com/shopspring/decimal"

// StockLineDTO existencia neta de un (artículo, lote, unidad) en GET /inventory.
type StockLineDTO struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Lot      string          `json:"lot"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"qty"`
}
