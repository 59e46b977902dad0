package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KmDRF/empacatalog/internal/apierror"
	"github.com/KmDRF/empacatalog/internal/dto"
	"github.com/KmDRF/empacatalog/internal/export"
	"github.com/KmDRF/empacatalog/internal/service"
)

type PedidoHandler struct{ svc service.PedidoService }

func NewPedidoHandler(svc service.PedidoService) *PedidoHandler {
	return &PedidoHandler{svc: svc}
}

// Exportar serves the pedido document as a download with the fixed filename.
// An empty cart produces a valid empty-items document.
func (h *PedidoHandler) Exportar(c *gin.Context) {
	contenido, _, err := h.svc.Exportar(time.Now())
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename=`+export.NombreArchivo)
	c.Data(http.StatusOK, "application/json", contenido)
}

// Mailto returns the prefilled mail-composition link for the current cart.
func (h *PedidoHandler) Mailto(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MailtoResponse{URL: h.svc.Mailto()})
}

// PDF serves the printable pedido summary.
func (h *PedidoHandler) PDF(c *gin.Context) {
	ruta, err := h.svc.GenerarPDF(time.Now())
	if err != nil {
		c.Error(err)
		return
	}
	c.FileAttachment(ruta, export.NombreArchivoPDF)
}

// Enviar sends the composed pedido over SMTP.
func (h *PedidoHandler) Enviar(c *gin.Context) {
	var req dto.EnviarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Enviar(req.Para); err != nil {
		c.JSON(http.StatusBadGateway, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
