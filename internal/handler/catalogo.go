package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KmDRF/empacatalog/internal/apierror"
	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/dto"
	"github.com/KmDRF/empacatalog/internal/service"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// Listar returns the catalog narrowed by marca, tipo and free-text query.
// No filters means the full catalog, in its original order.
func (h *CatalogoHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp := h.svc.Listar(catalog.Filtro{
		Marca: filter.Marca,
		Tipo:  filter.Tipo,
		Query: filter.Query,
	})
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ObtenerPorID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Marcas returns the brand labels that populate the brand selector.
func (h *CatalogoHandler) Marcas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.Marcas()})
}

// Tipos returns the type labels that populate the type selector.
func (h *CatalogoHandler) Tipos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.Tipos()})
}
