package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/KmDRF/empacatalog/internal/model"
	"github.com/KmDRF/empacatalog/internal/money"
)

// ComponerMensaje renders the human-readable order summary, one line per cart
// item, joined with CRLF. An empty cart yields an empty string.
func ComponerMensaje(lineas []model.LineaCarrito) string {
	renglones := make([]string, 0, len(lineas))
	for _, l := range lineas {
		renglones = append(renglones, fmt.Sprintf(
			"• %d x %s (Ref %s) = $%s",
			l.Cantidad, l.Nombre, l.Ref, money.Formatear(l.Subtotal()),
		))
	}
	return strings.Join(renglones, "\r\n")
}

// MailtoURL builds the mail-composition link with the fixed recipient and
// subject and the composed body.
func MailtoURL(lineas []model.LineaCarrito) string {
	return "mailto:" + Destinatario +
		"?subject=" + codificar(Asunto) +
		"&body=" + codificar(ComponerMensaje(lineas))
}

// codificar percent-encodes a mailto header value. RFC 6068 wants %20 for
// spaces, never "+".
func codificar(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
