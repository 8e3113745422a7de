package entities

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// FormatoFecha is the calendar-date layout used across the domain.
// Dates are plain ISO strings, never converted through time zones.
const FormatoFecha = "2006-01-02"

// EtapaProyecto is a time-bounded phase of a project with its own resource
// requests. Its ID is generated client-side the moment the etapa is added to
// a draft, so identity is stable across edits within a wizard session.
type EtapaProyecto struct {
	ID          string            `json:"id"`
	Nombre      string            `json:"nombre"`
	Descripcion string            `json:"descripcion"`
	FechaInicio string            `json:"fecha_inicio"`
	FechaFin    string            `json:"fecha_fin"`
	Pedidos     []PedidoCobertura `json:"pedidos"`
}

// FechasOrdenadas reports whether fecha_fin >= fecha_inicio. Zero-padded ISO
// dates order lexically, so no parsing is involved.
func (e EtapaProyecto) FechasOrdenadas() bool {
	return e.FechaFin >= e.FechaInicio
}

// FechaValida reports whether s is a well-formed YYYY-MM-DD date.
func FechaValida(s string) bool {
	_, err := time.Parse(FormatoFecha, s)
	return err == nil
}

// NuevaEtapaID generates a new etapa ID in format ETA-{nanoid(10)}.
func NuevaEtapaID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ETA-%s", id), nil
}
