package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/model"
)

func modeloDePrueba(t *testing.T) (Model, *cart.Carrito) {
	t.Helper()
	store, err := catalog.NewStore([]model.Producto{
		{ID: 1, Nombre: "Bolsa kraft", Ref: "EMP-101", Marca: "Empacor", Tipo: "Bolsa", Precio: decimal.NewFromInt(48500)},
		{ID: 2, Nombre: "Cinta transparente", Ref: "IND-412", Marca: "Induplas", Tipo: "Cinta", Precio: decimal.NewFromInt(21500)},
	}, []string{"Empacor", "Induplas"}, []string{"Bolsa", "Cinta"})
	require.NoError(t, err)

	carrito := cart.New(store)
	return New(store, carrito, t.TempDir()), carrito
}

func tecla(m Model, s string) Model {
	var msg tea.Msg
	switch s {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	nuevo, _ := m.Update(msg)
	return nuevo.(Model)
}

func TestContadorDeCartaArrancaEnUnoYTienePiso(t *testing.T) {
	m, _ := modeloDePrueba(t)

	require.Len(t, m.cantidades, 2)
	assert.Equal(t, 1, m.cantidades[0])

	m = tecla(m, "-")
	assert.Equal(t, 1, m.cantidades[0], "el contador nunca baja de 1")

	m = tecla(m, "+")
	m = tecla(m, "+")
	assert.Equal(t, 3, m.cantidades[0])
}

func TestAgregarUsaElContadorDeLaCarta(t *testing.T) {
	m, carrito := modeloDePrueba(t)

	m = tecla(m, "+")
	m = tecla(m, "a")

	lineas := carrito.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, 1, lineas[0].ID)
	assert.Equal(t, 2, lineas[0].Cantidad)
}

func TestCiclarMarcaRefiltraYReiniciaContadores(t *testing.T) {
	m, _ := modeloDePrueba(t)
	m = tecla(m, "+") // counter of the first card goes to 2

	m = tecla(m, "m") // marca = Empacor

	require.Len(t, m.visibles, 1)
	assert.Equal(t, "Empacor", m.visibles[0].Marca)
	assert.Equal(t, 1, m.cantidades[0], "re-render recrea los contadores")
}

func TestBusquedaRefiltraSoloConElTickVigente(t *testing.T) {
	m, _ := modeloDePrueba(t)

	m = tecla(m, "/") // focus search
	m = tecla(m, "c")
	m = tecla(m, "i")
	m = tecla(m, "n")

	// Three keystrokes, three scheduled ticks; only the last seq counts.
	require.Len(t, m.visibles, 2, "sin tick todavía no se refiltra")

	nuevo, _ := m.Update(refrescoMsg{seq: m.seq - 1})
	m = nuevo.(Model)
	assert.Len(t, m.visibles, 2, "un tick obsoleto se descarta")

	nuevo, _ = m.Update(refrescoMsg{seq: m.seq})
	m = nuevo.(Model)
	require.Len(t, m.visibles, 1)
	assert.Equal(t, "Cinta transparente", m.visibles[0].Nombre)
}

func TestLimpiarFiltrosRestauraTodoInmediatamente(t *testing.T) {
	m, _ := modeloDePrueba(t)

	m = tecla(m, "m")
	m = tecla(m, "t")
	require.NotEqual(t, 2, len(m.visibles))

	seqAntes := m.seq
	m = tecla(m, "l")

	assert.Equal(t, 0, m.marcaIdx)
	assert.Equal(t, 0, m.tipoIdx)
	assert.Equal(t, "", m.buscador.Value())
	assert.Len(t, m.visibles, 2)
	assert.Greater(t, m.seq, seqAntes, "limpiar invalida cualquier tick pendiente")
}

func TestVistaMuestraMensajeDeVacio(t *testing.T) {
	m, _ := modeloDePrueba(t)

	m = tecla(m, "/")
	m = tecla(m, "z")
	nuevo, _ := m.Update(refrescoMsg{seq: m.seq})
	m = nuevo.(Model)

	assert.Contains(t, m.View(), "No se encontraron productos")
}

func TestQuitarDesdeElGrid(t *testing.T) {
	m, carrito := modeloDePrueba(t)
	m = tecla(m, "a")
	require.Len(t, carrito.Lineas(), 1)

	m = tecla(m, "x")
	assert.Empty(t, carrito.Lineas())
}
