package handlers

import (
	"errors"
	"net/http"

	"comunidad_dashboard/internal/adapter/http/dto/response"
	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/usecase"
	"comunidad_dashboard/pkg"
	"comunidad_dashboard/pkg/apierror"

	"github.com/gin-gonic/gin"
)

// ProyectoHandler serves the read side of the dashboard: project detail and
// the form catalogs.

type ProyectoHandler struct {
	usecase usecase.IProyectoUseCase
}

func NewProyectoHandler(uc usecase.IProyectoUseCase) *ProyectoHandler {
	return &ProyectoHandler{usecase: uc}
}

// GetProyecto godoc
//
//	@Summary	Detalle de un proyecto
//	@Tags		proyectos
//	@Produce	json
//	@Param		proyecto_id	path	string	true	"ID del proyecto"
//	@Param		refresh		query	string	false	"1 para saltear la caché"
//	@Success	200	{object}	response.ProyectoResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/proyectos/{proyecto_id} [get]
func (h *ProyectoHandler) GetProyecto(c *gin.Context) {
	projectID := c.Param("proyecto_id")

	var (
		p   entities.Proyecto
		err error
	)
	if c.Query("refresh") == "1" {
		p, err = h.usecase.GetProyectoFresco(c.Request.Context(), projectID)
	} else {
		p, err = h.usecase.GetProyecto(c.Request.Context(), projectID)
	}
	if err != nil {
		appErr := mapBackendError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProyecto(p))
}

// GetCatalogos godoc
//
//	@Summary	Catálogos de los formularios (tipos de proyecto, tipos de pedido, países)
//	@Tags		catalogos
//	@Produce	json
//	@Success	200	{object}	response.CatalogosResponse
//	@Router		/catalogos [get]
func (h *ProyectoHandler) GetCatalogos(c *gin.Context) {
	c.JSON(http.StatusOK, response.CatalogosResponse{
		TiposProyecto: entities.TiposProyecto,
		TiposPedido:   entities.TiposPedido,
		Paises:        entities.Paises,
	})
}

// mapBackendError translates usecase/gateway failures into the AppError
// served by this BFF. Backend statuses pass through; network-level failures
// surface as 502 because the dashboard did get a (failed) answer from us.
func mapBackendError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrProyectoIDVacio) {
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsNetworkError():
			return pkg.NewDomainError("BACKEND_UNREACHABLE", apiErr.UserMessage(), apiErr, http.StatusBadGateway)
		case apiErr.Status == http.StatusNotFound:
			return pkg.NewDomainErrorSimple("PROYECTO_NOT_FOUND", apiErr.UserMessage(), http.StatusNotFound)
		default:
			return pkg.NewDomainError("BACKEND_ERROR", apiErr.UserMessage(), apiErr, apiErr.Status)
		}
	}

	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
