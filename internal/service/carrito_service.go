package service

import (
	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/dto"
	"github.com/KmDRF/empacatalog/internal/money"
)

// CarritoService exposes the cart mutations. Every operation returns the
// resulting cart view so the caller renders fresh state; unknown product ids
// are silent no-ops, mirroring the cart model contract.
type CarritoService interface {
	Agregar(req dto.AgregarItemRequest) *dto.CarritoResponse
	CambiarCantidad(id, delta int) *dto.CarritoResponse
	Quitar(id int) *dto.CarritoResponse
	Ver() *dto.CarritoResponse
}

type carritoService struct {
	carrito *cart.Carrito
}

func NewCarritoService(carrito *cart.Carrito) CarritoService {
	return &carritoService{carrito: carrito}
}

func (s *carritoService) Agregar(req dto.AgregarItemRequest) *dto.CarritoResponse {
	cantidad := req.Cantidad
	if cantidad == 0 {
		cantidad = 1
	}
	s.carrito.Agregar(req.ProductoID, cantidad)
	return s.Ver()
}

func (s *carritoService) CambiarCantidad(id, delta int) *dto.CarritoResponse {
	s.carrito.CambiarCantidad(id, delta)
	return s.Ver()
}

func (s *carritoService) Quitar(id int) *dto.CarritoResponse {
	s.carrito.Quitar(id)
	return s.Ver()
}

func (s *carritoService) Ver() *dto.CarritoResponse {
	lineas := s.carrito.Lineas()
	items := make([]dto.LineaCarritoResponse, 0, len(lineas))
	for _, l := range lineas {
		items = append(items, dto.LineaCarritoResponse{
			ID:       l.ID,
			Nombre:   l.Nombre,
			Ref:      l.Ref,
			Precio:   l.Precio,
			Cantidad: l.Cantidad,
			Subtotal: l.Subtotal(),
		})
	}
	totales := s.carrito.Totales()
	return &dto.CarritoResponse{
		Items: items,
		Totales: dto.TotalesResponse{
			Cantidad:        totales.Cantidad,
			Valor:           totales.Valor,
			ValorFormateado: money.Formatear(totales.Valor),
		},
	}
}
