package entities

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevoPedido(t *testing.T) {
	monto := 1500.0
	cantidad := 50.0

	t.Run("economico keeps monto and moneda", func(t *testing.T) {
		p, err := NuevoPedido("PED-1", "economico", "Fondos", &monto, "USD", nil, "")
		require.NoError(t, err)
		require.IsType(t, DetalleEconomico{}, p.Detalle)
		d := p.Detalle.(DetalleEconomico)
		assert.Equal(t, 1500.0, d.Monto)
		assert.Equal(t, "USD", d.Moneda)
	})

	t.Run("materiales never carries moneda", func(t *testing.T) {
		p, err := NuevoPedido("PED-2", "materiales", "Cemento", &monto, "USD", &cantidad, "bolsas")
		require.NoError(t, err)
		require.IsType(t, DetalleMateriales{}, p.Detalle)
		d := p.Detalle.(DetalleMateriales)
		assert.Equal(t, 50.0, d.Cantidad)
		assert.Equal(t, "bolsas", d.Unidad)
	})

	t.Run("mano_obra and transporte carry no extra fields", func(t *testing.T) {
		p, err := NuevoPedido("PED-3", "mano_obra", "Albañiles", &monto, "USD", &cantidad, "personas")
		require.NoError(t, err)
		assert.IsType(t, DetalleManoObra{}, p.Detalle)

		p, err = NuevoPedido("PED-4", "transporte", "Flete", nil, "", nil, "")
		require.NoError(t, err)
		assert.IsType(t, DetalleTransporte{}, p.Detalle)
	})

	t.Run("empty tipo is tolerated with no variant", func(t *testing.T) {
		p, err := NuevoPedido("", "", "Borrador parcial", nil, "", nil, "")
		require.NoError(t, err)
		assert.Nil(t, p.Detalle)
		assert.Equal(t, TipoPedido(""), p.Tipo())
	})

	t.Run("unknown tipo is rejected", func(t *testing.T) {
		_, err := NuevoPedido("PED-5", "combustible", "Nafta", nil, "", nil, "")
		assert.Error(t, err)
	})
}

func TestPedidoCobertura_JSON(t *testing.T) {
	t.Run("economico round trip", func(t *testing.T) {
		p := PedidoCobertura{
			ID:          "PED-1",
			Descripcion: "Fondos",
			Detalle:     DetalleEconomico{Monto: 1500, Moneda: "USD"},
		}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"PED-1","tipo":"economico","descripcion":"Fondos","monto":1500,"moneda":"USD"}`, string(data))

		var back PedidoCobertura
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, p, back)
	})

	t.Run("variant fields stay out of foreign kinds", func(t *testing.T) {
		p := PedidoCobertura{
			ID:          "PED-2",
			Descripcion: "Flete",
			Detalle:     DetalleTransporte{},
		}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"PED-2","tipo":"transporte","descripcion":"Flete"}`, string(data))
	})

	t.Run("decoding discards fields foreign to the tipo", func(t *testing.T) {
		raw := `{"id":"PED-3","tipo":"materiales","descripcion":"Cemento","monto":999,"moneda":"USD","cantidad":50,"unidad":"bolsas"}`
		var p PedidoCobertura
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		require.IsType(t, DetalleMateriales{}, p.Detalle)
		d := p.Detalle.(DetalleMateriales)
		assert.Equal(t, 50.0, d.Cantidad)
	})

	t.Run("unknown tipo fails to decode", func(t *testing.T) {
		raw := `{"id":"PED-4","tipo":"combustible","descripcion":"Nafta"}`
		var p PedidoCobertura
		assert.Error(t, json.Unmarshal([]byte(raw), &p))
	})

	t.Run("zero monto omits amount fields", func(t *testing.T) {
		p := PedidoCobertura{
			ID:          "PED-5",
			Descripcion: "Fondos sin monto",
			Detalle:     DetalleEconomico{},
		}
		data, err := json.Marshal(p)
		require.NoError(t, err)
		var campos map[string]any
		require.NoError(t, json.Unmarshal(data, &campos))
		assert.NotContains(t, campos, "monto")
		assert.NotContains(t, campos, "moneda")
	})
}

func TestNuevoPedidoID(t *testing.T) {
	id, err := NuevoPedidoID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "PED-"))
	assert.Len(t, id, len("PED-")+10)

	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NuevoPedidoID()
		require.NoError(t, err)
		assert.False(t, vistos[id], "duplicate id %s", id)
		vistos[id] = true
	}
}
