package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KmDRF/empacatalog/internal/apierror"
	"github.com/KmDRF/empacatalog/internal/dto"
	"github.com/KmDRF/empacatalog/internal/service"
)

type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

// Ver returns the current cart lines and freshly computed totals.
func (h *CarritoHandler) Ver(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Ver())
}

// AgregarItem adds units of a product. An unknown producto_id is not an
// error: the cart contract is a silent no-op, so the response is simply the
// unchanged cart.
func (h *CarritoHandler) AgregarItem(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Agregar(req))
}

// CambiarCantidad adjusts a line by a signed delta, clamped at 1.
func (h *CarritoHandler) CambiarCantidad(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CambiarCantidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.CambiarCantidad(id, req.Delta))
}

// QuitarItem removes a line entirely.
func (h *CarritoHandler) QuitarItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	c.JSON(http.StatusOK, h.svc.Quitar(id))
}
