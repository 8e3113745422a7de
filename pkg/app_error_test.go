package pkg

import (
	"errors"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("message without cause", func(t *testing.T) {
		e := NewDomainErrorSimple("PROYECTO_NOT_FOUND", "not found", 404)
		if e.Error() != "PROYECTO_NOT_FOUND: not found" {
			t.Fatalf("unexpected message: %q", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
	})

	t.Run("message with cause", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("BACKEND_ERROR", "backend failed", cause, 502)
		if e.Error() != "BACKEND_ERROR: backend failed: boom" {
			t.Fatalf("unexpected message: %q", e.Error())
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected the cause to unwrap")
		}
	})

	t.Run("wire shape", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", 400)
		he := e.ToHTTPError()
		if he.Code != "INVALID_REQUEST" || he.Message != "Invalid request" {
			t.Fatalf("unexpected wire error: %+v", he)
		}
	})
}
