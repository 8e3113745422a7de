package response

import (
	"time"

	"comunidad_dashboard/internal/domain/entities"
)

type PedidoResponse struct {
	ID          string  `json:"id"`
	Tipo        string  `json:"tipo"`
	Descripcion string  `json:"descripcion"`
	Monto       float64 `json:"monto,omitempty"`
	Moneda      string  `json:"moneda,omitempty"`
	Cantidad    float64 `json:"cantidad,omitempty"`
	Unidad      string  `json:"unidad,omitempty"`
}

func FromPedido(p entities.PedidoCobertura) PedidoResponse {
	r := PedidoResponse{
		ID:          p.ID,
		Tipo:        string(p.Tipo()),
		Descripcion: p.Descripcion,
	}
	switch d := p.Detalle.(type) {
	case entities.DetalleEconomico:
		r.Monto = d.Monto
		r.Moneda = d.Moneda
	case entities.DetalleMateriales:
		r.Cantidad = d.Cantidad
		r.Unidad = d.Unidad
	case entities.DetalleEquipamiento:
		r.Cantidad = d.Cantidad
		r.Unidad = d.Unidad
	}
	return r
}

type EtapaResponse struct {
	ID          string           `json:"id"`
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	FechaInicio string           `json:"fecha_inicio"`
	FechaFin    string           `json:"fecha_fin"`
	Pedidos     []PedidoResponse `json:"pedidos"`
}

func FromEtapa(e entities.EtapaProyecto) EtapaResponse {
	pedidos := make([]PedidoResponse, 0, len(e.Pedidos))
	for _, p := range e.Pedidos {
		pedidos = append(pedidos, FromPedido(p))
	}
	return EtapaResponse{
		ID:          e.ID,
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		FechaInicio: e.FechaInicio,
		FechaFin:    e.FechaFin,
		Pedidos:     pedidos,
	}
}

type ProyectoResponse struct {
	ID          string          `json:"id"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Tipo        string          `json:"tipo"`
	Pais        string          `json:"pais"`
	Provincia   string          `json:"provincia"`
	Ciudad      string          `json:"ciudad"`
	Barrio      string          `json:"barrio,omitempty"`
	Estado      string          `json:"estado"`
	Etapas      []EtapaResponse `json:"etapas"`

	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`

	BonitaCaseID            string `json:"bonita_case_id,omitempty"`
	BonitaProcessInstanceID string `json:"bonita_process_instance_id,omitempty"`
}

func FromProyecto(p entities.Proyecto) ProyectoResponse {
	etapas := make([]EtapaResponse, 0, len(p.Etapas))
	for _, e := range p.Etapas {
		etapas = append(etapas, FromEtapa(e))
	}
	return ProyectoResponse{
		ID:                      p.ID,
		Titulo:                  p.Titulo,
		Descripcion:             p.Descripcion,
		Tipo:                    string(p.Tipo),
		Pais:                    p.Pais,
		Provincia:               p.Provincia,
		Ciudad:                  p.Ciudad,
		Barrio:                  p.Barrio,
		Estado:                  string(p.Estado),
		Etapas:                  etapas,
		FechaCreacion:           p.FechaCreacion,
		FechaActualizacion:      p.FechaActualizacion,
		BonitaCaseID:            p.BonitaCaseID,
		BonitaProcessInstanceID: p.BonitaProcessInstanceID,
	}
}
