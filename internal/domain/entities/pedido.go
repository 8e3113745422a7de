package entities

import (
	"encoding/json"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TipoPedido is the fixed catalog of resource-request kinds.
type TipoPedido string

const (
	PedidoEconomico    TipoPedido = "economico"
	PedidoMateriales   TipoPedido = "materiales"
	PedidoManoObra     TipoPedido = "mano_obra"
	PedidoEquipamiento TipoPedido = "equipamiento"
	PedidoTransporte   TipoPedido = "transporte"
)

// TipoPedidoValido reports whether tipo belongs to the catalog.
func TipoPedidoValido(tipo string) bool {
	switch TipoPedido(tipo) {
	case PedidoEconomico, PedidoMateriales, PedidoManoObra, PedidoEquipamiento, PedidoTransporte:
		return true
	}
	return false
}

// DetallePedido carries the fields specific to one kind of pedido. Modeling
// the kind as a closed set of variants keeps a "materiales" request from ever
// carrying a currency, and vice versa.
type DetallePedido interface {
	Tipo() TipoPedido
}

// DetalleEconomico is the economic-support variant. Monto is optional; zero
// means no amount was specified.
type DetalleEconomico struct {
	Monto  float64
	Moneda string
}

func (DetalleEconomico) Tipo() TipoPedido { return PedidoEconomico }

// DetalleMateriales is the materials variant. Cantidad is optional.
type DetalleMateriales struct {
	Cantidad float64
	Unidad   string
}

func (DetalleMateriales) Tipo() TipoPedido { return PedidoMateriales }

// DetalleEquipamiento is the equipment variant. Cantidad is optional.
type DetalleEquipamiento struct {
	Cantidad float64
	Unidad   string
}

func (DetalleEquipamiento) Tipo() TipoPedido { return PedidoEquipamiento }

// DetalleManoObra is the labor variant; it has no extra fields.
type DetalleManoObra struct{}

func (DetalleManoObra) Tipo() TipoPedido { return PedidoManoObra }

// DetalleTransporte is the transport variant; it has no extra fields.
type DetalleTransporte struct{}

func (DetalleTransporte) Tipo() TipoPedido { return PedidoTransporte }

// PedidoCobertura is a single resource need attached to an etapa. Its ID is
// generated client-side when the pedido is added to a draft.
type PedidoCobertura struct {
	ID          string
	Descripcion string
	Detalle     DetallePedido
}

// Tipo returns the pedido kind, or "" when no variant is attached.
func (p PedidoCobertura) Tipo() TipoPedido {
	if p.Detalle == nil {
		return ""
	}
	return p.Detalle.Tipo()
}

// pedidoWire is the flat shape used by the backend contract: a "tipo"
// discriminator plus the union of every variant's optional fields.
type pedidoWire struct {
	ID          string   `json:"id"`
	Tipo        string   `json:"tipo"`
	Descripcion string   `json:"descripcion"`
	Monto       *float64 `json:"monto,omitempty"`
	Moneda      string   `json:"moneda,omitempty"`
	Cantidad    *float64 `json:"cantidad,omitempty"`
	Unidad      string   `json:"unidad,omitempty"`
}

func (p PedidoCobertura) MarshalJSON() ([]byte, error) {
	w := pedidoWire{
		ID:          p.ID,
		Tipo:        string(p.Tipo()),
		Descripcion: p.Descripcion,
	}
	switch d := p.Detalle.(type) {
	case DetalleEconomico:
		if d.Monto != 0 {
			monto := d.Monto
			w.Monto = &monto
			w.Moneda = d.Moneda
		}
	case DetalleMateriales:
		if d.Cantidad != 0 {
			cantidad := d.Cantidad
			w.Cantidad = &cantidad
			w.Unidad = d.Unidad
		}
	case DetalleEquipamiento:
		if d.Cantidad != 0 {
			cantidad := d.Cantidad
			w.Cantidad = &cantidad
			w.Unidad = d.Unidad
		}
	}
	return json.Marshal(w)
}

func (p *PedidoCobertura) UnmarshalJSON(data []byte) error {
	var w pedidoWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	pedido, err := NuevoPedido(w.ID, w.Tipo, w.Descripcion, w.Monto, w.Moneda, w.Cantidad, w.Unidad)
	if err != nil {
		return err
	}
	*p = pedido
	return nil
}

// NuevoPedido narrows the flat wire fields into the variant selected by
// tipo; fields that do not apply to the chosen kind are discarded.
func NuevoPedido(id, tipo, descripcion string, monto *float64, moneda string, cantidad *float64, unidad string) (PedidoCobertura, error) {
	p := PedidoCobertura{ID: id, Descripcion: descripcion}

	switch TipoPedido(tipo) {
	case PedidoEconomico:
		d := DetalleEconomico{}
		if monto != nil {
			d.Monto = *monto
			d.Moneda = moneda
		}
		p.Detalle = d
	case PedidoMateriales:
		d := DetalleMateriales{}
		if cantidad != nil {
			d.Cantidad = *cantidad
			d.Unidad = unidad
		}
		p.Detalle = d
	case PedidoEquipamiento:
		d := DetalleEquipamiento{}
		if cantidad != nil {
			d.Cantidad = *cantidad
			d.Unidad = unidad
		}
		p.Detalle = d
	case PedidoManoObra:
		p.Detalle = DetalleManoObra{}
	case PedidoTransporte:
		p.Detalle = DetalleTransporte{}
	case "":
		// Tolerated on partial drafts; validation rejects it before submit.
	default:
		return PedidoCobertura{}, fmt.Errorf("tipo de pedido desconocido: %q", tipo)
	}

	return p, nil
}

// NuevoPedidoID generates a new pedido ID in format PED-{nanoid(10)}.
func NuevoPedidoID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PED-%s", id), nil
}
