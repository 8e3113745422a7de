package response

import (
	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/domain/validation"
)

type BorradorResponse struct {
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Tipo        string          `json:"tipo"`
	Pais        string          `json:"pais"`
	Provincia   string          `json:"provincia"`
	Ciudad      string          `json:"ciudad"`
	Barrio      string          `json:"barrio,omitempty"`
	Etapas      []EtapaResponse `json:"etapas"`
}

type SesionResponse struct {
	SesionID         string           `json:"sesion_id"`
	Paso             int              `json:"paso"`
	TotalPasos       int              `json:"total_pasos"`
	Borrador         BorradorResponse `json:"borrador"`
	ProyectoCreadoID string           `json:"proyecto_creado_id,omitempty"`
}

func FromSesion(s entities.SesionBorrador) SesionResponse {
	etapas := make([]EtapaResponse, 0, len(s.Borrador.Etapas))
	for _, e := range s.Borrador.Etapas {
		etapas = append(etapas, FromEtapa(e))
	}
	return SesionResponse{
		SesionID:   s.ID,
		Paso:       s.Paso,
		TotalPasos: entities.TotalPasos,
		Borrador: BorradorResponse{
			Titulo:      s.Borrador.Titulo,
			Descripcion: s.Borrador.Descripcion,
			Tipo:        s.Borrador.Tipo,
			Pais:        s.Borrador.Pais,
			Provincia:   s.Borrador.Provincia,
			Ciudad:      s.Borrador.Ciudad,
			Barrio:      s.Borrador.Barrio,
			Etapas:      etapas,
		},
		ProyectoCreadoID: s.ProyectoCreadoID,
	}
}

type FieldErrorResponse struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// ValidacionResponse is the 422 body for a rejected transition or save: the
// session as it stands plus the field-scoped failures, first invalid field
// first.
type ValidacionResponse struct {
	Code    string               `json:"code"`
	Sesion  SesionResponse       `json:"sesion"`
	Errores []FieldErrorResponse `json:"errores"`
}

func FromValidacion(s entities.SesionBorrador, errs []validation.FieldError) ValidacionResponse {
	errores := make([]FieldErrorResponse, 0, len(errs))
	for _, e := range errs {
		errores = append(errores, FieldErrorResponse{Campo: e.Campo, Mensaje: e.Mensaje})
	}
	return ValidacionResponse{
		Code:    "VALIDATION_ERROR",
		Sesion:  FromSesion(s),
		Errores: errores,
	}
}

// EnvioResponse acknowledges a successful submit.
type EnvioResponse struct {
	ProyectoID string         `json:"proyecto_id"`
	Mensaje    string         `json:"mensaje"`
	Sesion     SesionResponse `json:"sesion"`
}

type CatalogosResponse struct {
	TiposProyecto []entities.OpcionCatalogo `json:"tipos_proyecto"`
	TiposPedido   []entities.OpcionCatalogo `json:"tipos_pedido"`
	Paises        []entities.PaisCatalogo   `json:"paises"`
}
