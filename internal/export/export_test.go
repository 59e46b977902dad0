package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KmDRF/empacatalog/internal/model"
)

func lineasDePrueba() []model.LineaCarrito {
	return []model.LineaCarrito{
		{ID: 1, Nombre: "Bolsa kraft", Ref: "EMP-101", Precio: decimal.NewFromInt(48500), Cantidad: 2},
		{ID: 4, Nombre: "Cinta transparente", Ref: "IND-412", Precio: decimal.NewFromInt(21500), Cantidad: 1},
	}
}

func totalesDePrueba() model.Totales {
	return model.Totales{Cantidad: 3, Valor: decimal.NewFromInt(118500)}
}

func TestNuevoPedidoCarritoVacio(t *testing.T) {
	p := NuevoPedido(nil, model.Totales{Valor: decimal.Zero}, time.Now())

	assert.Equal(t, Cliente, p.Cliente)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.Totales.Cantidad)
	assert.Equal(t, 0.0, p.Totales.Valor)
}

func TestNuevoPedidoSnapshotDelCarrito(t *testing.T) {
	ahora := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

	p := NuevoPedido(lineasDePrueba(), totalesDePrueba(), ahora)

	assert.Equal(t, "2026-08-30T10:30:00Z", p.Fecha)
	require.Len(t, p.Items, 2)
	assert.Equal(t, 1, p.Items[0].ID)
	assert.Equal(t, "EMP-101", p.Items[0].Ref)
	assert.Equal(t, 2, p.Items[0].Cantidad)
	assert.Equal(t, 48500.0, p.Items[0].Precio)
	assert.Equal(t, 3, p.Totales.Cantidad)
	assert.Equal(t, 118500.0, p.Totales.Valor)
}

func TestJSONNombresDeCampoEstables(t *testing.T) {
	p := NuevoPedido(lineasDePrueba(), totalesDePrueba(), time.Now())

	b, err := p.JSON()
	require.NoError(t, err)

	var crudo map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &crudo))
	for _, campo := range []string{"cliente", "fecha", "items", "totales"} {
		assert.Contains(t, crudo, campo)
	}

	var items []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(crudo["items"], &items))
	require.NotEmpty(t, items)
	for _, campo := range []string{"id", "ref", "nombre", "cantidad", "precio"} {
		assert.Contains(t, items[0], campo)
	}

	var totales map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(crudo["totales"], &totales))
	assert.Contains(t, totales, "cantidad")
	assert.Contains(t, totales, "valor")
}

func TestGuardarEscribeArchivoConNombreFijo(t *testing.T) {
	dir := t.TempDir()
	p := NuevoPedido(nil, model.Totales{Valor: decimal.Zero}, time.Now())

	ruta, err := Guardar(p, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, NombreArchivo), ruta)
	b, err := os.ReadFile(ruta)
	require.NoError(t, err)

	var leido Pedido
	require.NoError(t, json.Unmarshal(b, &leido))
	assert.Empty(t, leido.Items)
}

func TestComponerMensajeUnaLineaPorItem(t *testing.T) {
	msg := ComponerMensaje(lineasDePrueba())

	renglones := strings.Split(msg, "\r\n")
	require.Len(t, renglones, 2)
	assert.Equal(t, "• 2 x Bolsa kraft (Ref EMP-101) = $97.000", renglones[0])
	assert.Equal(t, "• 1 x Cinta transparente (Ref IND-412) = $21.500", renglones[1])
}

func TestComponerMensajeCarritoVacio(t *testing.T) {
	assert.Equal(t, "", ComponerMensaje(nil))
}

func TestMailtoURLDestinatarioYAsuntoFijos(t *testing.T) {
	url := MailtoURL(lineasDePrueba())

	assert.True(t, strings.HasPrefix(url, "mailto:"+Destinatario+"?subject="))
	assert.Contains(t, url, "Pedido%20Disramfor")
	assert.NotContains(t, url, "+", "los espacios van como %20, nunca como +")
	assert.Contains(t, url, "&body=")
}

func TestMailtoURLCarritoVacioTieneCuerpoVacio(t *testing.T) {
	url := MailtoURL(nil)
	assert.True(t, strings.HasSuffix(url, "&body="))
}

func TestGenerarPedidoPDF(t *testing.T) {
	dir := t.TempDir()
	p := NuevoPedido(lineasDePrueba(), totalesDePrueba(), time.Now())

	ruta, err := GenerarPedidoPDF(p, dir)
	require.NoError(t, err)

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Equal(t, NombreArchivoPDF, filepath.Base(ruta))
	assert.Greater(t, info.Size(), int64(0))
}
