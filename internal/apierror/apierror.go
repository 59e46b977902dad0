// Package apierror provides the standardized error envelopes for the API.
// Every 4xx/5xx response goes through here so clients see one shape and
// internals (stack traces, file paths) never leak.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors from request validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
