package routes

import (
	"comunidad_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProyectos = "/proyectos"
	PathWizard    = "/wizard"
)

func addProyectoRoutes(rg *gin.RouterGroup, proyectoHandler *handlers.ProyectoHandler) {
	proyectos := rg.Group(PathProyectos)
	{
		proyectos.GET("/:proyecto_id", proyectoHandler.GetProyecto)
	}

	rg.GET("/catalogos", proyectoHandler.GetCatalogos)
}

func addWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler) {
	wizard := rg.Group(PathWizard)
	{
		wizard.POST("", wizardHandler.IniciarSesion)
		wizard.GET("/:sesion_id", wizardHandler.GetSesion)
		wizard.PUT("/:sesion_id/basicos", wizardHandler.ActualizarDatosBasicos)
		wizard.POST("/:sesion_id/siguiente", wizardHandler.Siguiente)
		wizard.POST("/:sesion_id/anterior", wizardHandler.Anterior)
		wizard.PUT("/:sesion_id/etapas", wizardHandler.GuardarEtapa)
		wizard.DELETE("/:sesion_id/etapas/:etapa_id", wizardHandler.EliminarEtapa)
		wizard.PUT("/:sesion_id/etapas/:etapa_id/pedidos", wizardHandler.GuardarPedido)
		wizard.DELETE("/:sesion_id/etapas/:etapa_id/pedidos/:pedido_id", wizardHandler.EliminarPedido)
		wizard.POST("/:sesion_id/enviar", wizardHandler.Enviar)
	}
}
