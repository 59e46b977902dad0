// Package tui is the interactive terminal front end: a filterable product
// grid next to the live cart, driven by a single serial event loop.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	estiloTitulo = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")).
			MarginBottom(1)

	estiloFiltro = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3"))

	estiloCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(44)

	estiloCardActiva = estiloCard.
				BorderForeground(lipgloss.Color("#8BC34A"))

	estiloMeta = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	estiloPrecio = lipgloss.NewStyle().
			Bold(true)

	estiloCarrito = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(46).
			MarginLeft(2)

	estiloVacio = lipgloss.NewStyle().
			Faint(true).
			Italic(true)

	estiloEstado = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107"))

	estiloAyuda = lipgloss.NewStyle().
			Faint(true)
)
