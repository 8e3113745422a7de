package main

import (
	_ "comunidad_dashboard/docs"
	"comunidad_dashboard/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Comunidad Dashboard API
// @version         1.0
// @description     BFF del panel de proyectos comunitarios: detalle de proyectos y asistente de creación sobre la API remota de proyectos.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
