// Package infra wraps the external collaborators of the system. Today that is
// only the SMTP relay used to send composed pedidos.
package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/KmDRF/empacatalog/internal/config"
)

// Mailer wraps SMTP configuration for sending the pedido summary.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configurado reports whether SMTP credentials are present.
func (m *Mailer) Configurado() bool { return m.host != "" }

// EnviarPedido sends the composed order message, attaching the PDF when a
// path is given.
func (m *Mailer) EnviarPedido(to, subject, body, pdfPath string) error {
	if !m.Configurado() {
		return fmt.Errorf("mailer: SMTP no configurado")
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: adjuntar PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
