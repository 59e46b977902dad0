// Package export builds the outgoing representations of the cart: the pedido
// JSON document, the prefilled mail message and the printable PDF summary.
// Everything here reads cart state; nothing mutates it.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KmDRF/empacatalog/internal/model"
)

const (
	// Cliente identifies the pedido in the exported document.
	Cliente = "CLIENTE_DEMO"
	// NombreArchivo is the fixed download filename for the JSON document.
	NombreArchivo = "pedido-disramfor.json"
	// NombreArchivoPDF is the fixed filename for the PDF summary.
	NombreArchivoPDF = "pedido-disramfor.pdf"
	// Destinatario receives the composed order mail.
	Destinatario = "ventas@disramfor.com"
	// Asunto is the fixed mail subject.
	Asunto = "Pedido Disramfor – Catálogo"
)

// Pedido is the exportable order document. Field names are a stable
// interchange contract; amounts stay raw numbers, unformatted.
type Pedido struct {
	Cliente string        `json:"cliente"`
	Fecha   string        `json:"fecha"`
	Items   []ItemPedido  `json:"items"`
	Totales TotalesPedido `json:"totales"`
}

// ItemPedido mirrors one cart line.
type ItemPedido struct {
	ID       int     `json:"id"`
	Ref      string  `json:"ref"`
	Nombre   string  `json:"nombre"`
	Cantidad int     `json:"cantidad"`
	Precio   float64 `json:"precio"`
}

// TotalesPedido carries the cart aggregates.
type TotalesPedido struct {
	Cantidad int     `json:"cantidad"`
	Valor    float64 `json:"valor"`
}

// NuevoPedido snapshots the cart into a pedido document. An empty cart yields
// a valid document with zero items — that is not an error.
func NuevoPedido(lineas []model.LineaCarrito, totales model.Totales, ahora time.Time) Pedido {
	items := make([]ItemPedido, 0, len(lineas))
	for _, l := range lineas {
		precio, _ := l.Precio.Float64()
		items = append(items, ItemPedido{
			ID:       l.ID,
			Ref:      l.Ref,
			Nombre:   l.Nombre,
			Cantidad: l.Cantidad,
			Precio:   precio,
		})
	}
	valor, _ := totales.Valor.Float64()
	return Pedido{
		Cliente: Cliente,
		Fecha:   ahora.UTC().Format(time.RFC3339),
		Items:   items,
		Totales: TotalesPedido{Cantidad: totales.Cantidad, Valor: valor},
	}
}

// JSON serializes the document with two-space indentation.
func (p Pedido) JSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Guardar writes the document under dir with the fixed filename and returns
// the full path.
func Guardar(p Pedido, dir string) (string, error) {
	b, err := p.JSON()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: crear directorio: %w", err)
	}
	ruta := filepath.Join(dir, NombreArchivo)
	if err := os.WriteFile(ruta, b, 0644); err != nil {
		return "", fmt.Errorf("export: escribir pedido: %w", err)
	}
	return ruta, nil
}
