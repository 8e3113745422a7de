// Package cache holds the read cache for persisted projects. The cache is
// constructed explicitly at the application root and passed down — never an
// ambient global — so each test can build a fresh, isolated instance.
package cache

import (
	"time"

	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// TTLProyectos is the staleness window for fetched projects.
const TTLProyectos = 5 * time.Minute

type ProyectoCache struct {
	c *gocache.Cache
}

var _ interfaces.IProyectoCache = (*ProyectoCache)(nil)

func NewProyectoCache() *ProyectoCache {
	return &ProyectoCache{c: gocache.New(TTLProyectos, 10*time.Minute)}
}

func (pc *ProyectoCache) Get(projectID string) (entities.Proyecto, bool) {
	v, ok := pc.c.Get(projectID)
	if !ok {
		return entities.Proyecto{}, false
	}
	p, ok := v.(entities.Proyecto)
	return p, ok
}

func (pc *ProyectoCache) Set(projectID string, p entities.Proyecto) {
	pc.c.SetDefault(projectID, p)
}

// Flush drops every entry; called on application shutdown.
func (pc *ProyectoCache) Flush() {
	pc.c.Flush()
}
