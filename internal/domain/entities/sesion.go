package entities

import "time"

// Pasos del asistente de creación.
const (
	PasoDatosBasicos = 1
	PasoEtapas       = 2
	PasoResumen      = 3
	TotalPasos       = 3
)

// SesionBorrador is one creation-wizard session: the in-progress draft plus
// the step the user is on. Sessions live only in process memory; they do not
// survive a restart.
type SesionBorrador struct {
	ID       string           `json:"sesion_id"`
	Paso     int              `json:"paso"`
	Borrador ProyectoBorrador `json:"borrador"`

	// Enviando guards against overlapping submits of the same session.
	Enviando bool `json:"-"`

	// ProyectoCreadoID holds the server-assigned ID of the last project this
	// session created, so the dashboard can link to it after the reset.
	ProyectoCreadoID string `json:"proyecto_creado_id,omitempty"`

	CreadaEn      time.Time `json:"creada_en"`
	ActualizadaEn time.Time `json:"actualizada_en"`
}
