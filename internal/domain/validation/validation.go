// Package validation holds the declarative rules for a project draft, its
// etapas and its pedidos de cobertura. Every function is a pure check over
// its input: safe to call on partial drafts during interactive editing, never
// mutating anything.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"comunidad_dashboard/internal/domain/entities"
)

// Minimum lengths, counted in runes.
const (
	TituloMin            = 5
	DescripcionMin       = 20
	NombreEtapaMin       = 3
	DescripcionEtapaMin  = 10
	DescripcionPedidoMin = 5
	EtapasMin            = 1
)

// FieldError is one field-scoped validation failure. Campo uses dotted paths
// for nested collections (e.g. "etapas[1].fecha_fin") so a violation is
// attributable to the specific offending entry.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

func (e FieldError) Error() string {
	if e.Campo != "" {
		return fmt.Sprintf("%s: %s", e.Campo, e.Mensaje)
	}
	return e.Mensaje
}

func largo(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// DatosBasicos validates the fields gated by the first wizard step.
func DatosBasicos(b entities.ProyectoBorrador) []FieldError {
	var errs []FieldError

	if largo(b.Titulo) < TituloMin {
		errs = append(errs, FieldError{"titulo", fmt.Sprintf("El título debe tener al menos %d caracteres", TituloMin)})
	}
	if largo(b.Descripcion) < DescripcionMin {
		errs = append(errs, FieldError{"descripcion", fmt.Sprintf("La descripción debe tener al menos %d caracteres", DescripcionMin)})
	}
	if strings.TrimSpace(b.Tipo) == "" {
		errs = append(errs, FieldError{"tipo", "Selecciona un tipo de proyecto"})
	} else if !entities.TipoProyectoValido(b.Tipo) {
		errs = append(errs, FieldError{"tipo", "El tipo de proyecto no es válido"})
	}
	if strings.TrimSpace(b.Pais) == "" {
		errs = append(errs, FieldError{"pais", "Selecciona un país"})
	} else if !entities.PaisValido(b.Pais) {
		errs = append(errs, FieldError{"pais", "El país no es válido"})
	}
	if strings.TrimSpace(b.Provincia) == "" {
		errs = append(errs, FieldError{"provincia", "Ingresa la provincia"})
	}
	if strings.TrimSpace(b.Ciudad) == "" {
		errs = append(errs, FieldError{"ciudad", "Ingresa la ciudad"})
	}

	return errs
}

// Etapa validates a single etapa, including the cross-field date invariant
// fecha_fin >= fecha_inicio.
func Etapa(e entities.EtapaProyecto) []FieldError {
	var errs []FieldError

	if largo(e.Nombre) < NombreEtapaMin {
		errs = append(errs, FieldError{"nombre", fmt.Sprintf("El nombre debe tener al menos %d caracteres", NombreEtapaMin)})
	}
	if largo(e.Descripcion) < DescripcionEtapaMin {
		errs = append(errs, FieldError{"descripcion", fmt.Sprintf("La descripción debe tener al menos %d caracteres", DescripcionEtapaMin)})
	}

	inicioOK := true
	if strings.TrimSpace(e.FechaInicio) == "" {
		errs = append(errs, FieldError{"fecha_inicio", "Selecciona una fecha de inicio"})
		inicioOK = false
	} else if !entities.FechaValida(e.FechaInicio) {
		errs = append(errs, FieldError{"fecha_inicio", "La fecha de inicio no es válida"})
		inicioOK = false
	}

	if strings.TrimSpace(e.FechaFin) == "" {
		errs = append(errs, FieldError{"fecha_fin", "Selecciona una fecha de fin"})
	} else if !entities.FechaValida(e.FechaFin) {
		errs = append(errs, FieldError{"fecha_fin", "La fecha de fin no es válida"})
	} else if inicioOK && !e.FechasOrdenadas() {
		errs = append(errs, FieldError{"fecha_fin", "La fecha de fin debe ser posterior a la fecha de inicio"})
	}

	for i, p := range e.Pedidos {
		for _, err := range Pedido(p) {
			errs = append(errs, FieldError{fmt.Sprintf("pedidos[%d].%s", i, err.Campo), err.Mensaje})
		}
	}

	return errs
}

// Etapas validates the etapas collection as a whole, as gated by the second
// wizard step: at least one etapa, each passing its own rules.
func Etapas(etapas []entities.EtapaProyecto) []FieldError {
	if len(etapas) < EtapasMin {
		return []FieldError{{"etapas", "Agrega al menos una etapa"}}
	}

	var errs []FieldError
	for i, e := range etapas {
		for _, err := range Etapa(e) {
			errs = append(errs, FieldError{fmt.Sprintf("etapas[%d].%s", i, err.Campo), err.Mensaje})
		}
	}
	return errs
}

// Pedido validates a single pedido de cobertura. Numeric fields only apply
// to the variant that carries them and must be positive when present.
func Pedido(p entities.PedidoCobertura) []FieldError {
	var errs []FieldError

	if p.Detalle == nil {
		errs = append(errs, FieldError{"tipo", "Selecciona un tipo de pedido"})
	}
	if largo(p.Descripcion) < DescripcionPedidoMin {
		errs = append(errs, FieldError{"descripcion", fmt.Sprintf("La descripción debe tener al menos %d caracteres", DescripcionPedidoMin)})
	}

	switch d := p.Detalle.(type) {
	case entities.DetalleEconomico:
		if d.Monto < 0 {
			errs = append(errs, FieldError{"monto", "El monto debe ser positivo"})
		}
	case entities.DetalleMateriales:
		if d.Cantidad < 0 {
			errs = append(errs, FieldError{"cantidad", "La cantidad debe ser positiva"})
		}
	case entities.DetalleEquipamiento:
		if d.Cantidad < 0 {
			errs = append(errs, FieldError{"cantidad", "La cantidad debe ser positiva"})
		}
	}

	return errs
}

// Proyecto validates the complete draft, as run right before submit.
func Proyecto(b entities.ProyectoBorrador) []FieldError {
	errs := DatosBasicos(b)
	errs = append(errs, Etapas(b.Etapas)...)
	return errs
}
