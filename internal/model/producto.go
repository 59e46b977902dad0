package model

import "github.com/shopspring/decimal"

// Producto is one catalog entry. The catalog is supplied externally, loaded
// once at startup and treated as read-only for the whole session.
type Producto struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Ref         string          `json:"ref"`
	Descripcion string          `json:"descripcion"`
	Marca       string          `json:"marca"`
	Tipo        string          `json:"tipo"`
	Precio      decimal.Decimal `json:"precio"`
	Img         string          `json:"img"`
}
