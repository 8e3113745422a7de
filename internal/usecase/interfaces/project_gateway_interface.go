package interfaces

import (
	"context"

	"comunidad_dashboard/internal/domain/entities"
)

// IProjectGateway abstracts the remote projects API.
//
// The dashboard uses it to:
//   - fetch one persisted project by ID for the detail view
//   - submit a completed draft and receive the authoritative record back
//
// Implementations are thin typed transports: no retry, no caching, no auth
// injection. Failures come back as *apierror.APIError.
type IProjectGateway interface {
	GetProject(ctx context.Context, projectID string) (entities.Proyecto, error)
	CreateProject(ctx context.Context, borrador entities.ProyectoBorrador) (entities.Proyecto, error)
}
