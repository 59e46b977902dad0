// cmd/gencatalogo — escribe un catálogo de arranque editable.
// Uso: go run cmd/gencatalogo/main.go [-o catalogo.json]
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KmDRF/empacatalog/internal/catalog"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	out := flag.String("o", "catalogo.json", "ruta del archivo a generar")
	flag.Parse()

	if _, err := os.Stat(*out); err == nil {
		log.Fatal().Str("ruta", *out).Msg("el archivo ya existe, no se sobrescribe")
	}

	if err := os.WriteFile(*out, catalog.Seed(), 0644); err != nil {
		log.Fatal().Err(err).Msg("no se pudo escribir el catálogo")
	}
	log.Info().Str("ruta", *out).Msg("catálogo de arranque generado; edítelo y exporte CATALOGO_PATH")
}
