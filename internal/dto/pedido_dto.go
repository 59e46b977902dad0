package dto

// EnviarPedidoRequest triggers the SMTP send. Para overrides the fixed
// recipient when present.
type EnviarPedidoRequest struct {
	Para string `json:"para" validate:"omitempty,email"`
}

type MailtoResponse struct {
	URL string `json:"url"`
}
