package entities

import "time"

// EstadoProyecto represents the lifecycle of a persisted project.
//
// Domain notes:
//   - The remote projects API is the source of truth for project state.
//   - The dashboard never assigns estado; it only renders it.

type EstadoProyecto string

const (
	EstadoBorrador   EstadoProyecto = "borrador"
	EstadoActivo     EstadoProyecto = "activo"
	EstadoCompletado EstadoProyecto = "completado"
	EstadoCancelado  EstadoProyecto = "cancelado"
)

// TipoProyecto is the fixed catalog of project categories.
type TipoProyecto string

const (
	TipoConstruccion    TipoProyecto = "construccion"
	TipoEnergia         TipoProyecto = "energia"
	TipoAgua            TipoProyecto = "agua"
	TipoInfraestructura TipoProyecto = "infraestructura"
	TipoEducacion       TipoProyecto = "educacion"
	TipoSalud           TipoProyecto = "salud"
)

// TipoProyectoValido reports whether tipo belongs to the catalog.
func TipoProyectoValido(tipo string) bool {
	switch TipoProyecto(tipo) {
	case TipoConstruccion, TipoEnergia, TipoAgua, TipoInfraestructura, TipoEducacion, TipoSalud:
		return true
	}
	return false
}

// Proyecto is the persisted record returned by the remote projects API.
//
// ID, Estado, timestamps and the Bonita correlation identifiers are
// server-assigned; the dashboard only ever submits a ProyectoBorrador and
// receives this authoritative shape back.
type Proyecto struct {
	ID          string          `json:"id"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Tipo        TipoProyecto    `json:"tipo"`
	Pais        string          `json:"pais"`
	Provincia   string          `json:"provincia"`
	Ciudad      string          `json:"ciudad"`
	Barrio      string          `json:"barrio,omitempty"`
	Etapas      []EtapaProyecto `json:"etapas"`
	Estado      EstadoProyecto  `json:"estado"`

	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`

	// External workflow correlation (optional).
	BonitaCaseID            string `json:"bonita_case_id,omitempty"`
	BonitaProcessInstanceID string `json:"bonita_process_instance_id,omitempty"`
}

// ProyectoBorrador is the draft shape accumulated by the creation wizard and
// submitted to the backend. It carries no server-assigned fields.
type ProyectoBorrador struct {
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Tipo        string          `json:"tipo"`
	Pais        string          `json:"pais"`
	Provincia   string          `json:"provincia"`
	Ciudad      string          `json:"ciudad"`
	Barrio      string          `json:"barrio,omitempty"`
	Etapas      []EtapaProyecto `json:"etapas"`
}
