package interfaces

import (
	"context"

	"comunidad_dashboard/internal/domain/entities"
)

// ISesionStore abstracts the in-memory store of wizard sessions.
//
// Get returns the zero-value session when the ID is unknown; callers detect
// absence through an empty session ID.
type ISesionStore interface {
	Save(ctx context.Context, s entities.SesionBorrador) error
	Get(ctx context.Context, sesionID string) (entities.SesionBorrador, error)
	Delete(ctx context.Context, sesionID string) error
}
