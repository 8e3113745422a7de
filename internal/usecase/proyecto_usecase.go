package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/usecase/interfaces"
)

var (
	ErrProyectoIDVacio = errors.New("empty project id")
)

// IProyectoUseCase exposes project read operations for the dashboard.
//
//   - GetProyecto serves the interactive detail view: cached reads with a
//     5-minute staleness window and at most one retry of a failed fetch.
//   - GetProyectoFresco is the render-time variant: single attempt, no
//     cache. Error semantics are identical.

type IProyectoUseCase interface {
	GetProyecto(ctx context.Context, projectID string) (entities.Proyecto, error)
	GetProyectoFresco(ctx context.Context, projectID string) (entities.Proyecto, error)
}

// ProyectoUseCase drives the interactive reads through gateway (the
// browser-context client) and the render-time reads through directo (the
// server-context client). Both gateways speak the same contract; only their
// base URLs differ.
type ProyectoUseCase struct {
	gateway interfaces.IProjectGateway
	directo interfaces.IProjectGateway
	cache   interfaces.IProyectoCache
}

var _ IProyectoUseCase = (*ProyectoUseCase)(nil)

func NewProyectoUseCase(gateway, directo interfaces.IProjectGateway, cache interfaces.IProyectoCache) *ProyectoUseCase {
	return &ProyectoUseCase{gateway: gateway, directo: directo, cache: cache}
}

func (u *ProyectoUseCase) GetProyecto(ctx context.Context, projectID string) (entities.Proyecto, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Proyecto{}, ErrProyectoIDVacio
	}

	if p, ok := u.cache.Get(projectID); ok {
		log.Printf("[proyectos][usecase] cache hit project_id=%s", projectID)
		return p, nil
	}

	p, err := u.gateway.GetProject(ctx, projectID)
	if err != nil {
		// One retry, mirroring the dashboard's read policy.
		log.Printf("[proyectos][usecase] fetch failed, retrying project_id=%s err=%v", projectID, err)
		p, err = u.gateway.GetProject(ctx, projectID)
	}
	if err != nil {
		return entities.Proyecto{}, err
	}

	u.cache.Set(projectID, p)
	return p, nil
}

func (u *ProyectoUseCase) GetProyectoFresco(ctx context.Context, projectID string) (entities.Proyecto, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Proyecto{}, ErrProyectoIDVacio
	}
	return u.directo.GetProject(ctx, projectID)
}
