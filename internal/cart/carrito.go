// Package cart owns the session cart: an ordered list of lines keyed by
// product id, with an explicit mutation API instead of shared state.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/model"
)

// Carrito holds the cart lines in first-add order; a line keeps its position
// across quantity changes. Views subscribe to mutations instead of polling.
// The mutex is there for the HTTP surface — gin serves requests concurrently.
type Carrito struct {
	mu     sync.Mutex
	lineas []model.LineaCarrito
	store  *catalog.Store
	subs   []func()
}

// New returns an empty cart backed by the given catalog. The cart lives for
// the whole process; there is no clear operation.
func New(store *catalog.Store) *Carrito {
	return &Carrito{store: store}
}

// Suscribir registers fn to run after every cart mutation, once the mutation
// is fully applied.
func (c *Carrito) Suscribir(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Agregar adds cantidad units of the product. Unknown ids are silently
// ignored. The first add snapshots Precio from the catalog; later adds only
// increment the existing line.
func (c *Carrito) Agregar(id, cantidad int) {
	p, ok := c.store.PorID(id)
	if !ok {
		return
	}
	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.lineas[i].Cantidad += cantidad
	} else {
		c.lineas = append(c.lineas, model.LineaCarrito{
			ID:       p.ID,
			Nombre:   p.Nombre,
			Ref:      p.Ref,
			Precio:   p.Precio,
			Cantidad: cantidad,
		})
	}
	c.mu.Unlock()
	c.notificar()
}

// CambiarCantidad adjusts an existing line by delta, clamped at 1. Dropping a
// line is only ever explicit, via Quitar. Absent ids are ignored.
func (c *Carrito) CambiarCantidad(id, delta int) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	nueva := c.lineas[i].Cantidad + delta
	if nueva < 1 {
		nueva = 1
	}
	c.lineas[i].Cantidad = nueva
	c.mu.Unlock()
	c.notificar()
}

// Quitar deletes the line for id when present.
func (c *Carrito) Quitar(id int) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.lineas = append(c.lineas[:i], c.lineas[i+1:]...)
	c.mu.Unlock()
	c.notificar()
}

// Lineas returns a copy of the cart lines in insertion order.
func (c *Carrito) Lineas() []model.LineaCarrito {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.LineaCarrito, len(c.lineas))
	copy(out, c.lineas)
	return out
}

// Totales recomputes both aggregates from the lines on every call.
func (c *Carrito) Totales() model.Totales {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := model.Totales{Valor: decimal.Zero}
	for _, l := range c.lineas {
		t.Cantidad += l.Cantidad
		t.Valor = t.Valor.Add(l.Subtotal())
	}
	return t
}

func (c *Carrito) indexOf(id int) int {
	for i, l := range c.lineas {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// notificar runs the subscribers outside the lock so they can read the cart.
func (c *Carrito) notificar() {
	c.mu.Lock()
	subs := make([]func(), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
