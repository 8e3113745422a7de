package handlers

import (
	"errors"
	"net/http"

	request "comunidad_dashboard/internal/adapter/http/dto/request"
	"comunidad_dashboard/internal/adapter/http/dto/response"
	"comunidad_dashboard/internal/usecase"
	"comunidad_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errPayloadInvalido = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
)

// WizardHandler drives the project-creation wizard over HTTP. Every
// operation addresses one session; validation failures come back as 422
// with field-scoped errors and never lose draft state.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// IniciarSesion godoc
//
//	@Summary	Inicia una sesión del asistente de creación
//	@Tags		wizard
//	@Produce	json
//	@Success	201	{object}	response.SesionResponse
//	@Router		/wizard [post]
func (h *WizardHandler) IniciarSesion(c *gin.Context) {
	s, err := h.usecase.Iniciar(c.Request.Context())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSesion(s))
}

// GetSesion godoc
//
//	@Summary	Estado actual de una sesión
//	@Tags		wizard
//	@Produce	json
//	@Param		sesion_id	path		string	true	"ID de sesión"
//	@Success	200			{object}	response.SesionResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/wizard/{sesion_id} [get]
func (h *WizardHandler) GetSesion(c *gin.Context) {
	s, err := h.usecase.Obtener(c.Request.Context(), c.Param("sesion_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// ActualizarDatosBasicos godoc
//
//	@Summary	Guarda los datos básicos del borrador (sin validar)
//	@Tags		wizard
//	@Accept		json
//	@Produce	json
//	@Param		sesion_id	path		string						true	"ID de sesión"
//	@Param		payload		body		request.DatosBasicosRequest	true	"Datos básicos"
//	@Success	200			{object}	response.SesionResponse
//	@Router		/wizard/{sesion_id}/basicos [put]
func (h *WizardHandler) ActualizarDatosBasicos(c *gin.Context) {
	var payload request.DatosBasicosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	s, err := h.usecase.ActualizarDatosBasicos(c.Request.Context(), c.Param("sesion_id"), usecase.DatosBasicos{
		Titulo:      payload.Titulo,
		Descripcion: payload.Descripcion,
		Tipo:        payload.Tipo,
		Pais:        payload.Pais,
		Provincia:   payload.Provincia,
		Ciudad:      payload.Ciudad,
		Barrio:      payload.Barrio,
	})
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// Siguiente godoc
//
//	@Summary	Avanza al siguiente paso si el paso actual valida
//	@Tags		wizard
//	@Produce	json
//	@Param		sesion_id	path		string	true	"ID de sesión"
//	@Success	200			{object}	response.SesionResponse
//	@Failure	422			{object}	response.ValidacionResponse
//	@Router		/wizard/{sesion_id}/siguiente [post]
func (h *WizardHandler) Siguiente(c *gin.Context) {
	s, fieldErrs, err := h.usecase.Siguiente(c.Request.Context(), c.Param("sesion_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidacion(s, fieldErrs))
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// Anterior godoc
//
//	@Summary	Vuelve al paso anterior (siempre permitido)
//	@Tags		wizard
//	@Produce	json
//	@Param		sesion_id	path		string	true	"ID de sesión"
//	@Success	200			{object}	response.SesionResponse
//	@Router		/wizard/{sesion_id}/anterior [post]
func (h *WizardHandler) Anterior(c *gin.Context) {
	s, err := h.usecase.Anterior(c.Request.Context(), c.Param("sesion_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// GuardarEtapa godoc
//
//	@Summary	Agrega o reemplaza una etapa del borrador
//	@Tags		wizard
//	@Accept		json
//	@Produce	json
//	@Param		sesion_id	path		string					true	"ID de sesión"
//	@Param		payload		body		request.EtapaRequest	true	"Etapa"
//	@Success	200			{object}	response.SesionResponse
//	@Failure	422			{object}	response.ValidacionResponse
//	@Router		/wizard/{sesion_id}/etapas [put]
func (h *WizardHandler) GuardarEtapa(c *gin.Context) {
	var payload request.EtapaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}
	etapa, err := payload.ToEntity()
	if err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	s, fieldErrs, err := h.usecase.GuardarEtapa(c.Request.Context(), c.Param("sesion_id"), etapa)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidacion(s, fieldErrs))
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// EliminarEtapa godoc
//
//	@Summary	Elimina una etapa del borrador (no-op si no existe)
//	@Tags		wizard
//	@Produce	json
//	@Param		sesion_id	path		string	true	"ID de sesión"
//	@Param		etapa_id	path		string	true	"ID de etapa"
//	@Success	200			{object}	response.SesionResponse
//	@Router		/wizard/{sesion_id}/etapas/{etapa_id} [delete]
func (h *WizardHandler) EliminarEtapa(c *gin.Context) {
	s, err := h.usecase.EliminarEtapa(c.Request.Context(), c.Param("sesion_id"), c.Param("etapa_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// GuardarPedido godoc
//
//	@Summary	Agrega o reemplaza un pedido de cobertura en una etapa
//	@Tags		wizard
//	@Accept		json
//	@Produce	json
//	@Param		sesion_id	path		string					true	"ID de sesión"
//	@Param		etapa_id	path		string					true	"ID de etapa"
//	@Param		payload		body		request.PedidoRequest	true	"Pedido"
//	@Success	200			{object}	response.SesionResponse
//	@Failure	422			{object}	response.ValidacionResponse
//	@Router		/wizard/{sesion_id}/etapas/{etapa_id}/pedidos [put]
func (h *WizardHandler) GuardarPedido(c *gin.Context) {
	var payload request.PedidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}
	pedido, err := payload.ToEntity()
	if err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	s, fieldErrs, err := h.usecase.GuardarPedido(c.Request.Context(), c.Param("sesion_id"), c.Param("etapa_id"), pedido)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidacion(s, fieldErrs))
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// EliminarPedido godoc
//
//	@Summary	Elimina un pedido de cobertura (no-op si no existe)
//	@Tags		wizard
//	@Produce	json
//	@Param		sesion_id	path		string	true	"ID de sesión"
//	@Param		etapa_id	path		string	true	"ID de etapa"
//	@Param		pedido_id	path		string	true	"ID de pedido"
//	@Success	200			{object}	response.SesionResponse
//	@Router		/wizard/{sesion_id}/etapas/{etapa_id}/pedidos/{pedido_id} [delete]
func (h *WizardHandler) EliminarPedido(c *gin.Context) {
	s, err := h.usecase.EliminarPedido(c.Request.Context(), c.Param("sesion_id"), c.Param("etapa_id"), c.Param("pedido_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSesion(s))
}

// Enviar godoc
//
//	@Summary	Envía el borrador completo al backend de proyectos
//	@Tags		wizard
//	@Produce	json
//	@Param		sesion_id	path		string	true	"ID de sesión"
//	@Success	201			{object}	response.EnvioResponse
//	@Failure	409			{object}	pkg.HTTPError
//	@Failure	422			{object}	response.ValidacionResponse
//	@Failure	502			{object}	pkg.HTTPError
//	@Router		/wizard/{sesion_id}/enviar [post]
func (h *WizardHandler) Enviar(c *gin.Context) {
	resultado, fieldErrs, err := h.usecase.Enviar(c.Request.Context(), c.Param("sesion_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidacion(resultado.Sesion, fieldErrs))
		return
	}

	c.JSON(http.StatusCreated, response.EnvioResponse{
		ProyectoID: resultado.Proyecto.ID,
		Mensaje:    "Proyecto creado exitosamente",
		Sesion:     response.FromSesion(resultado.Sesion),
	})
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSesionIDVacio):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSesionNoEncontrada):
		return pkg.NewDomainErrorSimple("SESION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEtapaNoEncontrada):
		return pkg.NewDomainErrorSimple("ETAPA_NOT_FOUND", "Etapa not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnvioFueraDePaso):
		return pkg.NewDomainErrorSimple("SUBMIT_WRONG_STEP", "Submit is only allowed from the summary step", http.StatusConflict)
	case errors.Is(err, usecase.ErrEnvioEnCurso):
		return pkg.NewDomainErrorSimple("SUBMIT_IN_PROGRESS", "A submit is already in progress for this session", http.StatusConflict)
	}
	return mapBackendError(err)
}
