package catalog

import (
	"strings"

	"github.com/KmDRF/empacatalog/internal/model"
)

// Filtro is the current combination of filter controls. The zero value means
// no filtering at all. It is rebuilt from the controls on every render, never
// persisted.
type Filtro struct {
	Marca string
	Tipo  string
	Query string
}

// Aplicar returns the products that pass every active dimension, preserving
// catalog order. Marca and Tipo match exactly (case-sensitive); Query is a
// case-insensitive substring match over nombre, ref, descripcion, marca and
// tipo joined by spaces. Only case is normalized — accents and inner
// whitespace are compared as-is.
func (f Filtro) Aplicar(productos []model.Producto) []model.Producto {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]model.Producto, 0, len(productos))
	for _, p := range productos {
		if f.Marca != "" && p.Marca != f.Marca {
			continue
		}
		if f.Tipo != "" && p.Tipo != f.Tipo {
			continue
		}
		if q != "" {
			texto := strings.ToLower(p.Nombre + " " + p.Ref + " " + p.Descripcion + " " + p.Marca + " " + p.Tipo)
			if !strings.Contains(texto, q) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Vacio reports whether no dimension is active.
func (f Filtro) Vacio() bool {
	return f.Marca == "" && f.Tipo == "" && strings.TrimSpace(f.Query) == ""
}
