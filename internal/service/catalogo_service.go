package service

import (
	"errors"

	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/dto"
	"github.com/KmDRF/empacatalog/internal/model"
)

var ErrProductoNoEncontrado = errors.New("producto no encontrado")

// CatalogoService exposes the read-only catalog operations.
type CatalogoService interface {
	Listar(filtro catalog.Filtro) *dto.ProductoListResponse
	ObtenerPorID(id int) (*dto.ProductoResponse, error)
	Marcas() []string
	Tipos() []string
}

type catalogoService struct {
	store *catalog.Store
}

func NewCatalogoService(store *catalog.Store) CatalogoService {
	return &catalogoService{store: store}
}

// Listar runs the filter engine over the catalog. An empty result is valid
// and distinguishable from an unfiltered catalog only by its length.
func (s *catalogoService) Listar(filtro catalog.Filtro) *dto.ProductoListResponse {
	visibles := filtro.Aplicar(s.store.Productos())
	data := make([]dto.ProductoResponse, 0, len(visibles))
	for _, p := range visibles {
		data = append(data, productoToResponse(p))
	}
	return &dto.ProductoListResponse{Data: data, Total: len(data)}
}

func (s *catalogoService) ObtenerPorID(id int) (*dto.ProductoResponse, error) {
	p, ok := s.store.PorID(id)
	if !ok {
		return nil, ErrProductoNoEncontrado
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *catalogoService) Marcas() []string { return s.store.Marcas() }
func (s *catalogoService) Tipos() []string  { return s.store.Tipos() }

func productoToResponse(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Ref:         p.Ref,
		Descripcion: p.Descripcion,
		Marca:       p.Marca,
		Tipo:        p.Tipo,
		Precio:      p.Precio,
		Img:         p.Img,
	}
}
