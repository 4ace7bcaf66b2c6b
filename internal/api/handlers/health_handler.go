package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// UpstreamChecker verifica a API da seguradora
type UpstreamChecker interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	seguradora UpstreamChecker
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(seguradora UpstreamChecker) *HealthHandler {
	return &HealthHandler{
		seguradora: seguradora,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (circuito da API da seguradora fechado)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    map[string]string{"circuit_breaker": h.seguradora.BreakerState()},
		Timestamp: time.Now().Unix(),
	}

	// circuito aberto: o BFF só devolveria 502
	statusCode := http.StatusOK
	if response.Checks["circuit_breaker"] == "open" {
		response.Status = "not_ready"
		response.Error = "Circuito da API da seguradora aberto"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação, incluindo a conectividade com a API da seguradora
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.seguradora.Ping(ctx); err != nil {
		response.Checks["seguradora"] = "failed"
		response.Status = "unhealthy"
		response.Error = err.Error()
	} else {
		response.Checks["seguradora"] = "ok"
	}
	response.Checks["circuit_breaker"] = h.seguradora.BreakerState()

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
