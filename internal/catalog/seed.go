package catalog

import _ "embed"

// seedCatalogo ships a small demo catalog so the binaries run without any
// external file. Real deployments point CATALOGO_PATH at their own JSON.
//
//go:embed seed.json
var seedCatalogo []byte

// Seed returns the embedded demo catalog file, byte for byte. cmd/gencatalogo
// uses it to write a starter file operators can edit.
func Seed() []byte { return seedCatalogo }
