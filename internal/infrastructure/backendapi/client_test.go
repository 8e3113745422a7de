package backendapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/pkg/apierror"
)

func TestClient_GetProject(t *testing.T) {
	t.Run("200 decodes the project", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/api/v1/projects/proj-1" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(entities.Proyecto{ID: "proj-1", Titulo: "Red de agua", Estado: entities.EstadoActivo})
		}))
		defer srv.Close()

		p, err := NewClient(srv.URL).GetProject(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "proj-1" || p.Estado != entities.EstadoActivo {
			t.Fatalf("unexpected project: %+v", p)
		}
	})

	t.Run("404 with body normalizes the backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Proyecto no encontrado"}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).GetProject(context.Background(), "no-existe")
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an APIError, got %v", err)
		}
		if !apiErr.IsClientError() || apiErr.Status != http.StatusNotFound {
			t.Fatalf("unexpected classification: %+v", apiErr)
		}
		if got := apiErr.UserMessage(); got != "Proyecto no encontrado" {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("404 without body falls back to the localized default", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).GetProject(context.Background(), "no-existe")
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an APIError, got %v", err)
		}
		if got := apiErr.UserMessage(); got != "El recurso solicitado no fue encontrado." {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("empty 200 body reads as not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).GetProject(context.Background(), "proj-1")
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
			t.Fatalf("expected a 404 APIError, got %v", err)
		}
	})

	t.Run("unreachable backend yields a status-0 network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		_, err := NewClient(srv.URL).GetProject(context.Background(), "proj-1")
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an APIError, got %v", err)
		}
		if !apiErr.IsNetworkError() {
			t.Fatalf("expected a network error, got status %d", apiErr.Status)
		}
		if got := apiErr.UserMessage(); got != "Error de red. Verifica tu conexión a internet." {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("project id is path escaped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.EscapedPath() != "/api/v1/projects/a%2Fb" {
				t.Fatalf("unexpected path: %s", r.URL.EscapedPath())
			}
			_ = json.NewEncoder(w).Encode(entities.Proyecto{ID: "a/b"})
		}))
		defer srv.Close()

		if _, err := NewClient(srv.URL).GetProject(context.Background(), "a/b"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClient_CreateProject(t *testing.T) {
	borrador := entities.ProyectoBorrador{
		Titulo:      "Mejora Habitacional Centro",
		Descripcion: "Renovación integral de viviendas del casco céntrico",
		Tipo:        "construccion",
		Pais:        "AR",
		Provincia:   "Buenos Aires",
		Ciudad:      "La Plata",
		Etapas:      []entities.EtapaProyecto{},
	}

	t.Run("201 unwraps the proyecto envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/v1/projects" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("unexpected content type: %s", ct)
			}
			var got entities.ProyectoBorrador
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decoding draft: %v", err)
			}
			if got.Titulo != borrador.Titulo {
				t.Fatalf("unexpected draft: %+v", got)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"proyecto":{"id":"abc123","titulo":"Mejora Habitacional Centro","estado":"activo"}}`))
		}))
		defer srv.Close()

		p, err := NewClient(srv.URL).CreateProject(context.Background(), borrador)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "abc123" {
			t.Fatalf("unexpected project: %+v", p)
		}
	})

	t.Run("422 surfaces the validation messages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors":[{"message":"titulo requerido"},{"message":"pais inválido"}]}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).CreateProject(context.Background(), borrador)
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnprocessableEntity {
			t.Fatalf("expected a 422 APIError, got %v", err)
		}
		if got := apiErr.UserMessage(); got != "titulo requerido, pais inválido" {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("201 without a proyecto rejects the response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).CreateProject(context.Background(), borrador)
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an APIError, got %v", err)
		}
		if got := apiErr.UserMessage(); got != "No data received from server" {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("malformed error body degrades to the status default", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`<html>panic</html>`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).CreateProject(context.Background(), borrador)
		var apiErr *apierror.APIError
		if !errors.As(err, &apiErr) || !apiErr.IsServerError() {
			t.Fatalf("expected a 5xx APIError, got %v", err)
		}
		if got := apiErr.UserMessage(); got != "Error interno del servidor. Por favor, intenta más tarde." {
			t.Fatalf("unexpected message: %q", got)
		}
	})
}

func TestNewClientsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BACKEND_API_BASE_URL", "")
		t.Setenv("BACKEND_API_PUBLIC_BASE_URL", "")
		server, public := NewClientsFromEnv()
		if server.baseURL != "http://localhost:9000" {
			t.Fatalf("unexpected server base: %s", server.baseURL)
		}
		if public.baseURL != "http://localhost:9000" {
			t.Fatalf("unexpected public base: %s", public.baseURL)
		}
	})

	t.Run("distinct bases", func(t *testing.T) {
		t.Setenv("BACKEND_API_BASE_URL", "http://interno:9000/")
		t.Setenv("BACKEND_API_PUBLIC_BASE_URL", "https://api.example.org")
		server, public := NewClientsFromEnv()
		if server.baseURL != "http://interno:9000" {
			t.Fatalf("unexpected server base: %s", server.baseURL)
		}
		if public.baseURL != "https://api.example.org" {
			t.Fatalf("unexpected public base: %s", public.baseURL)
		}
	})
}
