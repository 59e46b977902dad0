package dto

import "github.com/shopspring/decimal"

// ProductoFilter binds the catalog query parameters. An empty field means the
// dimension is inactive.
type ProductoFilter struct {
	Marca string `form:"marca"`
	Tipo  string `form:"tipo"`
	Query string `form:"q"`
}

type ProductoResponse struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Ref         string          `json:"ref"`
	Descripcion string          `json:"descripcion"`
	Marca       string          `json:"marca"`
	Tipo        string          `json:"tipo"`
	Precio      decimal.Decimal `json:"precio"`
	Img         string          `json:"img"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
}
