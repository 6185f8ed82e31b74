package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/consultacr/app-fiscal/internal/config"
	"github.com/consultacr/app-fiscal/internal/handlers"
	"github.com/consultacr/app-fiscal/internal/logging"
	"github.com/consultacr/app-fiscal/internal/middleware"
	"github.com/consultacr/app-fiscal/internal/observability"
	"github.com/consultacr/app-fiscal/internal/poller"
	"github.com/consultacr/app-fiscal/internal/services"
	"github.com/consultacr/app-fiscal/internal/upstream"

	_ "github.com/consultacr/app-fiscal/docs"
)

// @title           Consulta Fiscal CR API
// @version         1.0
// @description     API de consulta de datos fiscales de Costa Rica: situación tributaria (AE), catálogo CABYS paginado, registro civil por cédula y tipo de cambio. Todos los datos provienen de los APIs públicos de Hacienda y del registro civil; este servicio normaliza las respuestas y no persiste información.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name ae
// @tag.description Consultas de Actividad Económica

// @tag.name cabys
// @tag.description Búsqueda paginada del catálogo CABYS

// @tag.name cedula
// @tag.description Consultas al registro civil

// @tag.name exchange
// @tag.description Tipo de cambio de referencia

// @tag.name status
// @tag.description Estado del API de Hacienda

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Redis is optional; without it responses are fetched fresh every time
	config.InitRedis()

	// Upstream clients share one pooled fetcher
	fetcher := upstream.NewFetcher(config.AppConfig.UpstreamTimeout)
	hacienda := upstream.NewHaciendaClient(config.AppConfig.HaciendaBaseURL, fetcher)
	gometa := upstream.NewGometaClient(config.AppConfig.GometaBaseURL, fetcher)

	cache := services.NewResponseCache(config.Redis)
	aeService := services.NewAEService(hacienda, cache, config.AppConfig.AECacheTTL)
	cedulaService := services.NewCedulaService(gometa)
	exchangeService := services.NewExchangeService(hacienda, cache, config.AppConfig.ExchangeCacheTTL)
	cabysService := services.NewCabysService(hacienda, config.AppConfig.CabysSessionTTL)
	defer cabysService.Close()

	statusPoller := poller.New(func(ctx context.Context) (time.Duration, error) {
		return hacienda.Probe(ctx, config.AppConfig.StatusProbeID)
	}, config.AppConfig.StatusPollInterval)
	statusPoller.Start()
	defer statusPoller.Stop()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	aeHandlers := handlers.NewAEHandlers(aeService)
	cedulaHandlers := handlers.NewCedulaHandlers(cedulaService)
	cabysHandlers := handlers.NewCabysHandlers(cabysService)
	exchangeHandlers := handlers.NewExchangeHandlers(exchangeService)
	statusHandlers := handlers.NewStatusHandlers(statusPoller)

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", handlers.HealthCheck)

		v1.GET("/ae/:id", aeHandlers.Lookup)
		v1.GET("/ae/:id/rows", aeHandlers.ActivityRows)

		v1.GET("/cedula/:query", cedulaHandlers.Lookup)
		v1.GET("/cedula/:query/rows", cedulaHandlers.Rows)

		v1.POST("/cabys/search", cabysHandlers.Search)
		v1.POST("/cabys/next", cabysHandlers.NextPage)
		v1.POST("/cabys/prev", cabysHandlers.PrevPage)
		v1.GET("/cabys/page", cabysHandlers.Page)
		v1.GET("/cabys/rows", cabysHandlers.Rows)

		v1.GET("/exchange-rate", exchangeHandlers.Get)

		v1.GET("/upstream/status", statusHandlers.Last)
		v1.POST("/upstream/status/check", statusHandlers.Check)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
