package request

import "comunidad_dashboard/internal/domain/entities"

// DatosBasicosRequest carries the first wizard step. Nothing is required at
// binding time: partial drafts are legal while editing, and the step gate
// is what decides whether the user may advance.
type DatosBasicosRequest struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
	Pais        string `json:"pais"`
	Provincia   string `json:"provincia"`
	Ciudad      string `json:"ciudad"`
	Barrio      string `json:"barrio"`
}

// PedidoRequest is the flat wire shape of a pedido de cobertura: a tipo
// discriminator plus the union of every kind's optional fields.
type PedidoRequest struct {
	ID          string   `json:"id"`
	Tipo        string   `json:"tipo"`
	Descripcion string   `json:"descripcion"`
	Monto       *float64 `json:"monto"`
	Moneda      string   `json:"moneda"`
	Cantidad    *float64 `json:"cantidad"`
	Unidad      string   `json:"unidad"`
}

// ToEntity narrows the flat fields into the variant selected by tipo.
// Fields that do not apply to the chosen kind are discarded here, at the
// boundary, so they can never ride along inside the draft.
func (r PedidoRequest) ToEntity() (entities.PedidoCobertura, error) {
	return entities.NuevoPedido(r.ID, r.Tipo, r.Descripcion, r.Monto, r.Moneda, r.Cantidad, r.Unidad)
}

// EtapaRequest carries one etapa, pedidos included, exactly as the etapa
// dialog saves it: wholesale.
type EtapaRequest struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	FechaInicio string          `json:"fecha_inicio"`
	FechaFin    string          `json:"fecha_fin"`
	Pedidos     []PedidoRequest `json:"pedidos"`
}

func (r EtapaRequest) ToEntity() (entities.EtapaProyecto, error) {
	pedidos := make([]entities.PedidoCobertura, 0, len(r.Pedidos))
	for _, p := range r.Pedidos {
		pedido, err := p.ToEntity()
		if err != nil {
			return entities.EtapaProyecto{}, err
		}
		pedidos = append(pedidos, pedido)
	}

	return entities.EtapaProyecto{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		FechaInicio: r.FechaInicio,
		FechaFin:    r.FechaFin,
		Pedidos:     pedidos,
	}, nil
}
