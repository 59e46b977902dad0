package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/dto"
	"github.com/KmDRF/empacatalog/internal/model"
	"github.com/KmDRF/empacatalog/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.NewStore([]model.Producto{
		{ID: 1, Nombre: "Bolsa kraft", Ref: "EMP-101", Marca: "Empacor", Tipo: "Bolsa", Precio: decimal.NewFromInt(48500)},
		{ID: 2, Nombre: "Cinta transparente", Ref: "IND-412", Marca: "Induplas", Tipo: "Cinta", Precio: decimal.NewFromInt(21500)},
	}, []string{"Empacor", "Induplas"}, []string{"Bolsa", "Cinta"})
	require.NoError(t, err)

	carrito := cart.New(store)
	catalogoH := NewCatalogoHandler(service.NewCatalogoService(store))
	carritoH := NewCarritoHandler(service.NewCarritoService(carrito))

	r := gin.New()
	r.GET("/v1/productos", catalogoH.Listar)
	r.GET("/v1/productos/:id", catalogoH.ObtenerPorID)
	r.GET("/v1/carrito", carritoH.Ver)
	r.POST("/v1/carrito/items", carritoH.AgregarItem)
	r.PATCH("/v1/carrito/items/:id", carritoH.CambiarCantidad)
	r.DELETE("/v1/carrito/items/:id", carritoH.QuitarItem)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListarProductosFiltraPorMarcaYQuery(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/productos?marca=Empacor", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProductoListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Bolsa kraft", resp.Data[0].Nombre)

	w = doJSON(t, r, http.MethodGet, "/v1/productos?q=ind-4", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "IND-412", resp.Data[0].Ref)
}

func TestObtenerProductoInexistenteDevuelve404(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/productos/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAgregarYVerCarrito(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":1,"cantidad":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CarritoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Cantidad)
	assert.Equal(t, 2, resp.Totales.Cantidad)
	assert.Equal(t, "97.000", resp.Totales.ValorFormateado)
}

func TestAgregarSinCantidadUsaUno(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CarritoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Cantidad)
}

func TestAgregarProductoDesconocidoDevuelveCarritoIntacto(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":999}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CarritoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestAgregarCantidadInvalidaDevuelve422(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":1,"cantidad":-2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCambiarCantidadConClamp(t *testing.T) {
	r := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":1,"cantidad":3}`)

	w := doJSON(t, r, http.MethodPatch, "/v1/carrito/items/1", `{"delta":-100}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CarritoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Cantidad)
}

func TestQuitarItem(t *testing.T) {
	r := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":1}`)

	w := doJSON(t, r, http.MethodDelete, "/v1/carrito/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CarritoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Totales.Cantidad)
}
