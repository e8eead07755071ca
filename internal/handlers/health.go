package handlers

import (
	"net/http"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/services"
	"github.com/ama-mesquita/app-declaracao/internal/utils"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []utils.ValidationError `json:"details"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Indica se o serviço de declarações está pronto para gerar documentos.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{"declaration": "healthy"},
	}

	if services.DeclarationServiceInstance == nil {
		health.Status = "unhealthy"
		health.Services["declaration"] = "not initialized"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
