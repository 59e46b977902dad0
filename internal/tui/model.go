package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/export"
	"github.com/KmDRF/empacatalog/internal/model"
	"github.com/KmDRF/empacatalog/internal/money"
)

// retardoBusqueda is the quiescence delay for free-text search: rapid
// keystrokes collapse into one refilter.
const retardoBusqueda = 120 * time.Millisecond

// refrescoMsg re-derives the visible grid after the search delay. seq guards
// against stale ticks: every keystroke bumps the sequence, so only the newest
// pending tick refilters.
type refrescoMsg struct{ seq int }

// Model is the terminal catalog browser. The whole view is a full projection
// of (filter state, cart) — nothing is diffed incrementally.
type Model struct {
	store      *catalog.Store
	carrito    *cart.Carrito
	exportPath string

	buscador textinput.Model
	marcaIdx int // 0 = todas las marcas
	tipoIdx  int // 0 = todos los productos

	visibles   []model.Producto
	cantidades []int // per-card counter, parallel to visibles
	cursor     int

	seq    int // search debounce sequence
	estado string
}

func New(store *catalog.Store, carrito *cart.Carrito, exportPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "nombre, ref, descripción…"
	ti.CharLimit = 60
	ti.Width = 30

	m := Model{store: store, carrito: carrito, exportPath: exportPath, buscador: ti}
	m.refiltrar()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) filtro() catalog.Filtro {
	f := catalog.Filtro{Query: m.buscador.Value()}
	if m.marcaIdx > 0 {
		f.Marca = m.store.Marcas()[m.marcaIdx-1]
	}
	if m.tipoIdx > 0 {
		f.Tipo = m.store.Tipos()[m.tipoIdx-1]
	}
	return f
}

// refiltrar re-derives the grid and resets every per-card counter to 1 —
// counters belong to the rendered cards, not to the products.
func (m *Model) refiltrar() {
	m.visibles = m.filtro().Aplicar(m.store.Productos())
	m.cantidades = make([]int, len(m.visibles))
	for i := range m.cantidades {
		m.cantidades[i] = 1
	}
	if m.cursor >= len(m.visibles) {
		m.cursor = len(m.visibles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refrescoMsg:
		if msg.seq != m.seq {
			return m, nil // stale tick, a newer keystroke superseded it
		}
		m.refiltrar()
		return m, nil

	case tea.KeyMsg:
		if m.buscador.Focused() {
			return m.actualizarBusqueda(msg)
		}
		return m.actualizarNavegacion(msg)
	}
	return m, nil
}

func (m Model) actualizarBusqueda(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.buscador.Blur()
		return m, nil
	}

	antes := m.buscador.Value()
	var cmd tea.Cmd
	m.buscador, cmd = m.buscador.Update(msg)
	if m.buscador.Value() == antes {
		return m, cmd
	}

	m.seq++
	seq := m.seq
	return m, tea.Batch(cmd, tea.Tick(retardoBusqueda, func(time.Time) tea.Msg {
		return refrescoMsg{seq}
	}))
}

func (m Model) actualizarNavegacion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.estado = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.buscador.Focus()
		return m, textinput.Blink

	case "m":
		m.marcaIdx = (m.marcaIdx + 1) % (len(m.store.Marcas()) + 1)
		m.refiltrar()

	case "t":
		m.tipoIdx = (m.tipoIdx + 1) % (len(m.store.Tipos()) + 1)
		m.refiltrar()

	case "l":
		// Clear all three dimensions and refilter immediately; bumping seq
		// invalidates any pending search tick.
		m.marcaIdx, m.tipoIdx = 0, 0
		m.buscador.SetValue("")
		m.seq++
		m.refiltrar()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visibles)-1 {
			m.cursor++
		}

	case "+", "right":
		if len(m.visibles) > 0 {
			m.cantidades[m.cursor]++
		}

	case "-", "left":
		if len(m.visibles) > 0 && m.cantidades[m.cursor] > 1 {
			m.cantidades[m.cursor]--
		}

	case "a", "enter":
		if len(m.visibles) > 0 {
			p := m.visibles[m.cursor]
			m.carrito.Agregar(p.ID, m.cantidades[m.cursor])
			m.estado = fmt.Sprintf("%d x %s agregado al carrito", m.cantidades[m.cursor], p.Nombre)
		}

	case "i":
		if len(m.visibles) > 0 {
			m.carrito.CambiarCantidad(m.visibles[m.cursor].ID, 1)
		}

	case "d":
		if len(m.visibles) > 0 {
			m.carrito.CambiarCantidad(m.visibles[m.cursor].ID, -1)
		}

	case "x":
		if len(m.visibles) > 0 {
			m.carrito.Quitar(m.visibles[m.cursor].ID)
		}

	case "e":
		pedido := export.NuevoPedido(m.carrito.Lineas(), m.carrito.Totales(), time.Now())
		ruta, err := export.Guardar(pedido, m.exportPath)
		if err != nil {
			m.estado = "error: " + err.Error()
		} else {
			m.estado = "pedido exportado en " + ruta
		}

	case "v":
		m.estado = export.MailtoURL(m.carrito.Lineas())
	}

	return m, nil
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(estiloTitulo.Render("Catálogo Disramfor"))
	b.WriteString("\n")
	b.WriteString(m.barraFiltros())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.vistaGrid(), m.vistaCarrito()))
	if m.estado != "" {
		b.WriteString("\n")
		b.WriteString(estiloEstado.Render(m.estado))
	}
	b.WriteString("\n")
	b.WriteString(estiloAyuda.Render(
		"↑/↓ mover · +/- cantidad · a agregar · i/d ± carrito · x quitar · " +
			"m marca · t tipo · / buscar · l limpiar · e exportar · v correo · q salir"))
	return b.String()
}

func (m Model) barraFiltros() string {
	marca := "Todas las marcas"
	if m.marcaIdx > 0 {
		marca = m.store.Marcas()[m.marcaIdx-1]
	}
	tipo := "Todos los productos"
	if m.tipoIdx > 0 {
		tipo = m.store.Tipos()[m.tipoIdx-1]
	}
	return estiloFiltro.Render("Marca: "+marca) + "   " +
		estiloFiltro.Render("Tipo: "+tipo) + "   " +
		"Buscar: " + m.buscador.View()
}

func (m Model) vistaGrid() string {
	if len(m.visibles) == 0 {
		return estiloVacio.Render("No se encontraron productos")
	}

	cards := make([]string, 0, len(m.visibles))
	for i, p := range m.visibles {
		cuerpo := fmt.Sprintf("%s\n%s\n%s\n%s   %s",
			p.Nombre,
			estiloMeta.Render("Ref: "+p.Ref+" • "+p.Marca),
			estiloMeta.Render("Tipo: "+p.Tipo),
			estiloPrecio.Render("$"+money.Formatear(p.Precio)),
			fmt.Sprintf("[ %d ]", m.cantidades[i]),
		)
		if i == m.cursor {
			cards = append(cards, estiloCardActiva.Render(cuerpo))
		} else {
			cards = append(cards, estiloCard.Render(cuerpo))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) vistaCarrito() string {
	lineas := m.carrito.Lineas()
	totales := m.carrito.Totales()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Carrito (%d)\n\n", totales.Cantidad))
	if len(lineas) == 0 {
		b.WriteString(estiloVacio.Render("vacío"))
		b.WriteString("\n")
	}
	for _, l := range lineas {
		b.WriteString(fmt.Sprintf("%s %s\n", l.Nombre, estiloMeta.Render("Ref "+l.Ref)))
		b.WriteString(estiloMeta.Render(fmt.Sprintf("  $%s × %d = $%s",
			money.Formatear(l.Precio), l.Cantidad, money.Formatear(l.Subtotal()))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Unidades: %d\n", totales.Cantidad))
	b.WriteString(estiloPrecio.Render("Total: $" + money.Formatear(totales.Valor)))
	return estiloCarrito.Render(b.String())
}
