// Package catalog holds the read-only session catalog and the pure filter
// engine that narrows it for display.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/KmDRF/empacatalog/internal/model"
)

// archivoCatalogo is the on-disk shape of CATALOGO_PATH.
type archivoCatalogo struct {
	Marcas    []string         `json:"marcas"`
	Tipos     []string         `json:"tipos"`
	Productos []model.Producto `json:"productos"`
}

// Store is the session catalog: the product list in its original order plus
// the brand and type enumerations that populate the filter controls. It is
// built once and never mutated afterwards.
type Store struct {
	productos []model.Producto
	marcas    []string
	tipos     []string
	porID     map[int]model.Producto
}

// NewStore indexes the product list by id. Duplicate ids are a hard error:
// the whole cart bookkeeping keys on them.
func NewStore(productos []model.Producto, marcas, tipos []string) (*Store, error) {
	porID := make(map[int]model.Producto, len(productos))
	for _, p := range productos {
		if _, dup := porID[p.ID]; dup {
			return nil, fmt.Errorf("catalogo: id duplicado %d (%s)", p.ID, p.Nombre)
		}
		porID[p.ID] = p
	}
	return &Store{productos: productos, marcas: marcas, tipos: tipos, porID: porID}, nil
}

// Cargar reads the catalog file at path, or the embedded seed when path is
// empty.
func Cargar(path string) (*Store, error) {
	data := seedCatalogo
	origen := "seed embebido"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalogo: leer %s: %w", path, err)
		}
		data = b
		origen = path
	}

	var archivo archivoCatalogo
	if err := json.Unmarshal(data, &archivo); err != nil {
		return nil, fmt.Errorf("catalogo: parsear %s: %w", origen, err)
	}

	s, err := NewStore(archivo.Productos, archivo.Marcas, archivo.Tipos)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("origen", origen).
		Int("productos", len(s.productos)).
		Int("marcas", len(s.marcas)).
		Int("tipos", len(s.tipos)).
		Msg("catalogo cargado")
	return s, nil
}

// Productos returns the full catalog in its original order.
func (s *Store) Productos() []model.Producto { return s.productos }

// PorID looks a product up by id.
func (s *Store) PorID(id int) (model.Producto, bool) {
	p, ok := s.porID[id]
	return p, ok
}

// Marcas returns the known brand labels.
func (s *Store) Marcas() []string { return s.marcas }

// Tipos returns the known product-type labels.
func (s *Store) Tipos() []string { return s.tipos }
