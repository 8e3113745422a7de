package entities

// OpcionCatalogo is one selectable option presented by the dashboard forms.
type OpcionCatalogo struct {
	Valor    string `json:"valor"`
	Etiqueta string `json:"etiqueta"`
	Icono    string `json:"icono,omitempty"`
}

// PaisCatalogo is one selectable country.
type PaisCatalogo struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// TiposProyecto is the project-category catalog shown on the first wizard step.
var TiposProyecto = []OpcionCatalogo{
	{Valor: string(TipoConstruccion), Etiqueta: "Mejora de construcciones"},
	{Valor: string(TipoEnergia), Etiqueta: "Paneles solares"},
	{Valor: string(TipoAgua), Etiqueta: "Sistemas de potabilización"},
	{Valor: string(TipoInfraestructura), Etiqueta: "Mejora de calles"},
	{Valor: string(TipoEducacion), Etiqueta: "Infraestructura educativa"},
	{Valor: string(TipoSalud), Etiqueta: "Centros de salud"},
}

// TiposPedido is the resource-request catalog shown by the pedido dialog.
var TiposPedido = []OpcionCatalogo{
	{Valor: string(PedidoEconomico), Etiqueta: "Apoyo Económico", Icono: "💰"},
	{Valor: string(PedidoMateriales), Etiqueta: "Materiales", Icono: "🧱"},
	{Valor: string(PedidoManoObra), Etiqueta: "Mano de Obra", Icono: "👷"},
	{Valor: string(PedidoEquipamiento), Etiqueta: "Equipamiento", Icono: "🔧"},
	{Valor: string(PedidoTransporte), Etiqueta: "Transporte", Icono: "🚛"},
}

// Paises is the country catalog.
var Paises = []PaisCatalogo{
	{Codigo: "AR", Nombre: "Argentina"},
	{Codigo: "BO", Nombre: "Bolivia"},
	{Codigo: "BR", Nombre: "Brasil"},
	{Codigo: "CL", Nombre: "Chile"},
	{Codigo: "CO", Nombre: "Colombia"},
	{Codigo: "EC", Nombre: "Ecuador"},
	{Codigo: "PE", Nombre: "Perú"},
	{Codigo: "UY", Nombre: "Uruguay"},
	{Codigo: "VE", Nombre: "Venezuela"},
}

// PaisValido reports whether code belongs to the country catalog.
func PaisValido(codigo string) bool {
	for _, p := range Paises {
		if p.Codigo == codigo {
			return true
		}
	}
	return false
}
