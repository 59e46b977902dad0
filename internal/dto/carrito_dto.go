package dto

import "github.com/shopspring/decimal"

// AgregarItemRequest adds units of a product to the cart. Cantidad defaults
// to 1 when omitted; zero/negative values are rejected by validation.
type AgregarItemRequest struct {
	ProductoID int `json:"producto_id" validate:"required"`
	Cantidad   int `json:"cantidad" validate:"omitempty,min=1"`
}

// CambiarCantidadRequest adjusts a cart line by a signed delta (typically ±1).
type CambiarCantidadRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type LineaCarritoResponse struct {
	ID       int             `json:"id"`
	Nombre   string          `json:"nombre"`
	Ref      string          `json:"ref"`
	Precio   decimal.Decimal `json:"precio"`
	Cantidad int             `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type TotalesResponse struct {
	Cantidad int             `json:"cantidad"`
	Valor    decimal.Decimal `json:"valor"`
	// ValorFormateado is the display rendering (es-CO) of Valor.
	ValorFormateado string `json:"valor_formateado"`
}

type CarritoResponse struct {
	Items   []LineaCarritoResponse `json:"items"`
	Totales TotalesResponse        `json:"totales"`
}
