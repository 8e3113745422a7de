// Package apierror converts the heterogeneous failures of the remote
// projects API (error bodies, transport failures, unexpected values) into a
// single typed error consumed by the rest of the application.
package apierror

import (
	"errors"
	"net/http"
	"time"
)

// APIError is the normalized form of every backend-call failure.
//
// Status 0 means no HTTP response was received (network-level failure).
type APIError struct {
	Message    string
	Status     int
	StatusText string
	Details    any
	Timestamp  time.Time
}

func (e *APIError) Error() string {
	return e.Message
}

// IsClientError reports whether the error is a 4xx.
func (e *APIError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// IsServerError reports whether the error is a 5xx.
func (e *APIError) IsServerError() bool {
	return e.Status >= 500
}

// IsNetworkError reports whether no response reached the client.
func (e *APIError) IsNetworkError() bool {
	return e.Status == 0
}

// UserMessage returns the message shown to the user. It prefers messages
// supplied by the backend (message, error, detail, or a validation errors
// array) and falls back to a status-keyed localized default.
func (e *APIError) UserMessage() string {
	if msg := extractMessage(e.Details); msg != "" {
		return msg
	}
	return e.statusMessage()
}

func (e *APIError) statusMessage() string {
	switch e.Status {
	case http.StatusBadRequest:
		return "Los datos enviados son inválidos. Por favor, revisa el formulario."
	case http.StatusUnauthorized:
		return "No estás autenticado. Por favor, inicia sesión."
	case http.StatusForbidden:
		return "No tienes permisos para realizar esta acción."
	case http.StatusNotFound:
		return "El recurso solicitado no fue encontrado."
	case http.StatusConflict:
		return "Ya existe un recurso con estos datos."
	case http.StatusUnprocessableEntity:
		return "Los datos enviados no cumplen con las validaciones requeridas."
	case http.StatusTooManyRequests:
		return "Demasiadas solicitudes. Por favor, intenta más tarde."
	case http.StatusInternalServerError:
		return "Error interno del servidor. Por favor, intenta más tarde."
	case http.StatusServiceUnavailable:
		return "El servicio no está disponible temporalmente."
	}
	if e.Message != "" {
		return e.Message
	}
	return "Ocurrió un error inesperado."
}

func extractMessage(details any) string {
	obj, ok := details.(map[string]any)
	if !ok {
		return ""
	}

	for _, key := range []string{"message", "error", "detail"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}

	// Validation errors arrive as [{"message": "..."}, ...].
	if errs, ok := obj["errors"].([]any); ok {
		joined := ""
		for _, raw := range errs {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			msg, ok := item["message"].(string)
			if !ok || msg == "" {
				continue
			}
			if joined != "" {
				joined += ", "
			}
			joined += msg
		}
		if joined != "" {
			return joined
		}
	}

	return ""
}

// Normalize builds an APIError from an arbitrary failure value and an HTTP
// status. It never panics; malformed input degrades to a generic message.
func Normalize(raw any, status int, resp *http.Response) *APIError {
	e := &APIError{
		Message:   "Request failed",
		Status:    status,
		Timestamp: time.Now(),
	}
	if resp != nil {
		e.StatusText = resp.Status
	}

	switch v := raw.(type) {
	case nil:
	case map[string]any:
		e.Details = v
		if msg, ok := v["message"].(string); ok && msg != "" {
			e.Message = msg
		}
	case error:
		e.Message = v.Error()
		e.Details = map[string]any{"message": v.Error()}
	case string:
		if v != "" {
			e.Message = v
			e.Details = map[string]any{"message": v}
		}
	default:
		e.Details = v
	}

	return e
}

// NewNetworkError builds the status-0 APIError used when the transport
// itself failed and no response exists.
func NewNetworkError(message string) *APIError {
	return Normalize(map[string]any{"message": message}, 0, nil)
}

// Message extracts a user-facing message from any error value.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Ocurrió un error inesperado"
}
