// Package money is the single formatting point for every price or total shown
// as text (views, mail body, PDF). The structured pedido export keeps raw
// numbers and does not go through here.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// es-CO: "." groups thousands, "," marks decimals.
var impresora = message.NewPrinter(language.MustParse("es-CO"))

// Formatear renders d with es-CO grouping and up to three decimals, no
// trailing zeros.
func Formatear(d decimal.Decimal) string {
	f, _ := d.Float64()
	return impresora.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}
