package interfaces

import "comunidad_dashboard/internal/domain/entities"

// IProyectoCache abstracts the read cache for persisted projects. Entries go
// stale after the cache's TTL; Get must not return expired entries.
type IProyectoCache interface {
	Get(projectID string) (entities.Proyecto, bool)
	Set(projectID string, p entities.Proyecto)
	Flush()
}
