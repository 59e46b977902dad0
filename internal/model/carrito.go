package model

import "github.com/shopspring/decimal"

// LineaCarrito is one cart entry. Precio is snapshotted from the catalog at
// first add and never refreshed, so a line survives later catalog changes.
type LineaCarrito struct {
	ID       int
	Nombre   string
	Ref      string
	Precio   decimal.Decimal
	Cantidad int
}

// Subtotal returns Precio × Cantidad.
func (l LineaCarrito) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Totales are the cart aggregates. They carry no cached state: both values are
// recomputed from the lines on every read.
type Totales struct {
	Cantidad int
	Valor    decimal.Decimal
}
