package main

import (
	"github.com/ama-mesquita/app-declaracao/internal/handlers"
	"github.com/ama-mesquita/app-declaracao/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ama-mesquita/app-declaracao/docs"
)

// newRouter wires middleware and routes
func newRouter() (*gin.Engine, error) {
	templates, err := handlers.LoadTemplates()
	if err != nil {
		return nil, err
	}

	// Create router with middleware
	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Form page
	router.GET("/", handlers.ShowForm)
	router.POST("/declaracao", handlers.SubmitForm)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.POST("/declarations", handlers.CreateDeclaration)
		v1.POST("/identifiers/format", handlers.FormatIdentifiers)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}
