package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType es el tipo de un movimiento. Solo existen dos variantes y cada una lleva su signo.
type MovementType string

// Tipos de movimiento.
const (
	MovementEntrada MovementType = "ENTRADA" // entrada, suma al inventario
	MovementSalida  MovementType = "SALIDA"  // salida, resta del inventario
)

// MovementTypes lista las variantes válidas en orden de presentación.
var MovementTypes = []MovementType{MovementEntrada, MovementSalida}

// ParseMovementType valida s contra las dos variantes conocidas.
func ParseMovementType(s string) (MovementType, error) {
	switch t := MovementType(strings.ToUpper(strings.TrimSpace(s))); t {
	case MovementEntrada, MovementSalida:
		return t, nil
	default:
		return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
	}
}

// Sign devuelve +1 para ENTRADA y -1 para SALIDA.
func (t MovementType) Sign() decimal.Decimal {
	if t == MovementEntrada {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(-1)
}

// Valid indica si t es una de las dos variantes.
func (t MovementType) Valid() bool {
	return t == MovementEntrada || t == MovementSalida
}

func (t MovementType) String() string { return string(t) }

// Movement representa un movimiento de entrada o salida con sus líneas de detalle.
// MovementNo es el número visible para el usuario, distinto del ID interno.
type Movement struct {
	ID         string
	MovementNo int
	Type       MovementType
	Date       time.Time
	UserID     string
	Supplier   string
	Customer   string
	Note       string
	Details    []MovementDetail
}

// MovementDetail es una línea de un movimiento. Lot es opcional ("" = sin lote).
type MovementDetail struct {
	ID         string
	MovementID string
	ItemID     string
	Lot        string
	Quantity   decimal.Decimal
	Unit       string
}

// MovementView es el modelo de lectura para listados y dashboard.
type MovementView struct {
	Movement
	Username string
	Lines    []MovementLineView
}

// MovementLineView detalle con el nombre del artículo resuelto.
type MovementLineView struct {
	ItemID   string
	ItemName string
	Lot      string
	Quantity decimal.Decimal
	Unit     string
}
