package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "comunidad_dashboard/docs" // This will be auto-generated
	"comunidad_dashboard/internal/adapter/http/handlers"
	"comunidad_dashboard/internal/infrastructure/backendapi"
	"comunidad_dashboard/internal/infrastructure/cache"
	"comunidad_dashboard/internal/infrastructure/sessions"
	"comunidad_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run starts the server and blocks until shutdown. The session store and
// the project cache are constructed here, passed down explicitly, and torn
// down on exit.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	store, proyectoCache := getRoutes()

	srv := &http.Server{Addr: ":" + strconv.Itoa(PORT), Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()
	log.Printf("[http][routes] listening on :%d", PORT)

	<-ctx.Done()
	log.Printf("[http][routes] shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][routes] shutdown failed: %v", err)
	}

	proyectoCache.Flush()
	store.Close()
}

func getRoutes() (*sessions.MemoryStore, *cache.ProyectoCache) {
	// Two configured clients against the same backend contract: one for the
	// server execution context, one for the browser execution context.
	serverClient, publicClient := backendapi.NewClientsFromEnv()

	store := sessions.NewMemoryStore()
	proyectoCache := cache.NewProyectoCache()

	proyectoUseCase := usecase.NewProyectoUseCase(publicClient, serverClient, proyectoCache)
	wizardUseCase := usecase.NewWizardUseCase(store, publicClient)

	proyectoHandler := handlers.NewProyectoHandler(proyectoUseCase)
	wizardHandler := handlers.NewWizardHandler(wizardUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProyectoRoutes(v1, proyectoHandler)
	addWizardRoutes(v1, wizardHandler)

	return store, proyectoCache
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
