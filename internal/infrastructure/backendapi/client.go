// Package backendapi is the typed client for the remote projects API. It is
// a thin transport: paths and payload shapes are fixed here, failures are
// normalized into *apierror.APIError, and policy (caching, retries) belongs
// to the callers.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/usecase/interfaces"
	"comunidad_dashboard/pkg/apierror"
)

const (
	defaultTimeout = 15 * time.Second

	mensajeErrorRed = "Error de red. Verifica tu conexión a internet."
)

type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IProjectGateway = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientsFromEnv builds the two configured instances: one bound to the
// server-context base URL and one to the browser-context (public) base URL.
//
// Env vars:
//   - BACKEND_API_BASE_URL (default: http://localhost:9000)
//   - BACKEND_API_PUBLIC_BASE_URL (default: BACKEND_API_BASE_URL)
func NewClientsFromEnv() (server *Client, public *Client) {
	base := getenvDefault("BACKEND_API_BASE_URL", "http://localhost:9000")
	publicBase := getenvDefault("BACKEND_API_PUBLIC_BASE_URL", base)
	return NewClient(base), NewClient(publicBase)
}

// GetProject fetches one persisted project by ID.
func (c *Client) GetProject(ctx context.Context, projectID string) (entities.Proyecto, error) {
	endpoint := fmt.Sprintf("%s/api/v1/projects/%s", c.baseURL, url.PathEscape(projectID))
	log.Printf("[proyectos][gateway] get start project_id=%s", projectID)

	body, resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Proyecto{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return entities.Proyecto{}, normalizeBody(body, resp)
	}
	if len(body) == 0 {
		return entities.Proyecto{}, apierror.Normalize(map[string]any{"message": "Project not found"}, http.StatusNotFound, resp)
	}

	var p entities.Proyecto
	if err := json.Unmarshal(body, &p); err != nil {
		log.Printf("[proyectos][gateway] get decode failed project_id=%s err=%v", projectID, err)
		return entities.Proyecto{}, apierror.Normalize(err, http.StatusInternalServerError, resp)
	}

	log.Printf("[proyectos][gateway] get success project_id=%s estado=%s", p.ID, p.Estado)
	return p, nil
}

// proyectoEnvelope is the 201 body of POST /api/v1/projects.
type proyectoEnvelope struct {
	Proyecto entities.Proyecto `json:"proyecto"`
}

// CreateProject submits a completed draft. Exactly one request is issued;
// retrying is the caller's decision.
func (c *Client) CreateProject(ctx context.Context, borrador entities.ProyectoBorrador) (entities.Proyecto, error) {
	endpoint := c.baseURL + "/api/v1/projects"

	payload, err := json.Marshal(borrador)
	if err != nil {
		return entities.Proyecto{}, apierror.Normalize(err, http.StatusInternalServerError, nil)
	}
	log.Printf("[proyectos][gateway] create start payload_len=%d", len(payload))

	body, resp, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return entities.Proyecto{}, err
	}

	if resp.StatusCode != http.StatusCreated {
		return entities.Proyecto{}, normalizeBody(body, resp)
	}
	if len(body) == 0 {
		return entities.Proyecto{}, apierror.Normalize(map[string]any{"message": "No data received from server"}, resp.StatusCode, resp)
	}

	var envelope proyectoEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[proyectos][gateway] create decode failed err=%v", err)
		return entities.Proyecto{}, apierror.Normalize(err, http.StatusInternalServerError, resp)
	}
	if envelope.Proyecto.ID == "" {
		return entities.Proyecto{}, apierror.Normalize(map[string]any{"message": "No data received from server"}, resp.StatusCode, resp)
	}

	log.Printf("[proyectos][gateway] create success proyecto_id=%s", envelope.Proyecto.ID)
	return envelope.Proyecto, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, *http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, nil, apierror.NewNetworkError(mensajeErrorRed)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response reached the client: a status-0 network failure.
		log.Printf("[proyectos][gateway] transport failed method=%s err=%v", method, err)
		return nil, nil, apierror.NewNetworkError(mensajeErrorRed)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, apierror.NewNetworkError(mensajeErrorRed)
	}
	return body, resp, nil
}

// normalizeBody funnels a non-2xx response through the error normalizer,
// feeding it the decoded error body when the backend sent one.
func normalizeBody(body []byte, resp *http.Response) *apierror.APIError {
	var details map[string]any
	if len(body) > 0 {
		// A malformed error body degrades to the status-keyed message.
		_ = json.Unmarshal(body, &details)
	}
	if details == nil {
		return apierror.Normalize(nil, resp.StatusCode, resp)
	}
	return apierror.Normalize(details, resp.StatusCode, resp)
}
