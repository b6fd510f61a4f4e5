package handlers

import (
	"net/http"
	"time"

	"garden-planner-backend/internal/database"
	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db         *gorm.DB
	companions service.CompanionServiceInterface
}

// NewHealthHandler creates a new health handler. db may be nil when the
// dataset is read from a file.
func NewHealthHandler(db *gorm.DB, companions service.CompanionServiceInterface) *HealthHandler {
	return &HealthHandler{
		db:         db,
		companions: companions,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) checks(okLabel, failLabel string) (bool, map[string]string) {
	healthy := true
	services := make(map[string]string)

	status := h.companions.DatasetStatus()
	if status.Loaded {
		services["dataset"] = okLabel
	} else {
		healthy = false
		services["dataset"] = failLabel + ": dataset not loaded"
	}

	if h.db != nil {
		if err := database.Ping(h.db); err != nil {
			healthy = false
			services["database"] = failLabel + ": " + err.Error()
		} else {
			services["database"] = okLabel
		}
	}

	return healthy, services
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including the companion dataset and database
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	healthy, services := h.checks("healthy", "error")
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the dataset is loaded and the database reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready, services := h.checks("ready", "not ready")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
