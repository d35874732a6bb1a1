package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/learning-platform/api-backend/docs"
	"github.com/learning-platform/api-backend/internal/handlers"
	"github.com/learning-platform/api-backend/internal/middleware"
	"github.com/learning-platform/api-backend/internal/services"
)

// Options configures the route table
type Options struct {
	// APIPrefix is the group the greeting routes live under (e.g. "/api")
	APIPrefix   string
	ServiceName string

	GreetingService *services.GreetingService
	Logger          *zap.Logger

	// Registry receives the HTTP collectors. Nil disables metrics and /metrics.
	Registry *prometheus.Registry

	SwaggerEnabled bool
}

// New builds the gin engine with all routes registered
func New(opts Options) *gin.Engine {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.GreetingService == nil {
		opts.GreetingService = services.NewGreetingService(nil)
	}

	router := gin.New()

	// Non-GET methods on known paths answer 405 instead of 404
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(opts.Logger))

	if opts.Registry != nil {
		metrics := middleware.NewMetrics(opts.Registry)
		router.Use(metrics.Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	router.GET("/ping", handlers.NewPingHandler(opts.ServiceName))

	if opts.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	greetingHandler := handlers.NewGreetingHandler(opts.GreetingService)

	api := router.Group(opts.APIPrefix)
	{
		api.GET("/hello", greetingHandler.Hello)
		api.GET("/test", greetingHandler.Test)
	}

	return router
}
