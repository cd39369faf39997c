// Package numfmt formatea cantidades para mostrarlas en vistas y PDF (es-CO).
package numfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits coincide con la escala de la columna quantity.
const MaxFractionDigits = 3

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Quantity formatea una cantidad con separadores locales y hasta tres decimales.
func Quantity(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(MaxFractionDigits).InexactFloat64(),
		number.MaxFractionDigits(MaxFractionDigits)))
}
