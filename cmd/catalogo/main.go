// cmd/catalogo — interactive terminal catalog browser: filter the grid,
// assemble a cart and export the pedido without leaving the shell.
package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/config"
	"github.com/KmDRF/empacatalog/internal/tui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := catalog.Cargar(cfg.CatalogoPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	carrito := cart.New(store)

	p := tea.NewProgram(tui.New(store, carrito, cfg.ExportPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal UI error")
	}
}
