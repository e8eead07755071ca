package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/config"
	"github.com/ama-mesquita/app-declaracao/internal/logging"
	"github.com/ama-mesquita/app-declaracao/internal/observability"
	"github.com/ama-mesquita/app-declaracao/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Declaração de Residência API
// @version         1.0
// @description     Emissão de declarações de residência da Associação de Moradores e Amigos do Alto Uruguai. Recebe os dados do morador, formata RG, CPF e CEP e devolve a declaração assinada pelo presidente em PDF.

// @contact.name   A.M.A - Alto Uruguai

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name declaration
// @tag.description Emissão da declaração de residência

// @tag.name health
// @tag.description Health check operations

func main() {
	// LOG_LEVEL may come from .env, so read it before building the logger
	if err := config.LoadEnvFile(); err != nil {
		panic(err)
	}

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	services.InitDeclarationService()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := newRouter()
	if err != nil {
		logging.Logger.Fatal("failed to build router", zap.Error(err))
	}

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
