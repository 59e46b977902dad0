package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/export"
	"github.com/KmDRF/empacatalog/internal/infra"
)

// PedidoService turns the current cart into its exportable forms. All
// operations read cart state; none mutate it.
type PedidoService interface {
	// Exportar builds the pedido document, writes it under the export
	// directory with the fixed filename and returns the serialized bytes.
	Exportar(ahora time.Time) ([]byte, string, error)
	// Mailto returns the prefilled mail-composition link.
	Mailto() string
	// GenerarPDF writes the printable summary and returns its path.
	GenerarPDF(ahora time.Time) (string, error)
	// Enviar sends the composed message over SMTP with the PDF attached.
	// An empty para falls back to the fixed recipient.
	Enviar(para string) error
}

type pedidoService struct {
	carrito    *cart.Carrito
	mailer     *infra.Mailer
	exportPath string
}

func NewPedidoService(carrito *cart.Carrito, mailer *infra.Mailer, exportPath string) PedidoService {
	return &pedidoService{carrito: carrito, mailer: mailer, exportPath: exportPath}
}

func (s *pedidoService) Exportar(ahora time.Time) ([]byte, string, error) {
	pedido := export.NuevoPedido(s.carrito.Lineas(), s.carrito.Totales(), ahora)
	ruta, err := export.Guardar(pedido, s.exportPath)
	if err != nil {
		return nil, "", err
	}
	b, err := pedido.JSON()
	if err != nil {
		return nil, "", err
	}
	log.Info().
		Str("ruta", ruta).
		Int("items", len(pedido.Items)).
		Msg("pedido exportado")
	return b, ruta, nil
}

func (s *pedidoService) Mailto() string {
	return export.MailtoURL(s.carrito.Lineas())
}

func (s *pedidoService) GenerarPDF(ahora time.Time) (string, error) {
	pedido := export.NuevoPedido(s.carrito.Lineas(), s.carrito.Totales(), ahora)
	ruta, err := export.GenerarPedidoPDF(pedido, s.exportPath)
	if err != nil {
		return "", err
	}
	log.Info().Str("ruta", ruta).Msg("pedido PDF generado")
	return ruta, nil
}

func (s *pedidoService) Enviar(para string) error {
	if para == "" {
		para = export.Destinatario
	}
	cuerpo := export.ComponerMensaje(s.carrito.Lineas())

	// Best effort: a missing PDF downgrades to a plain-text mail.
	rutaPDF, err := s.GenerarPDF(time.Now())
	if err != nil {
		log.Warn().Err(err).Msg("pedido PDF no disponible, enviando sin adjunto")
		rutaPDF = ""
	}

	if err := s.mailer.EnviarPedido(para, export.Asunto, cuerpo, rutaPDF); err != nil {
		return err
	}
	log.Info().Str("para", para).Msg("pedido enviado por correo")
	return nil
}
