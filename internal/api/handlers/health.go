package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint; overridden at link time
var Version = "dev"

const pingTimeout = 2 * time.Second

// HealthHandler reports process and store health
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// StoreStatus describes the outcome of a store ping and the connection pool at that moment
type StoreStatus struct {
	Reachable       bool   `json:"reachable"`
	Error           string `json:"error,omitempty"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string      `json:"status" example:"healthy"`
	Timestamp time.Time   `json:"timestamp"`
	Version   string      `json:"version" example:"1.0.0"`
	Driver    string      `json:"driver" example:"sqlite"`
	Store     StoreStatus `json:"store"`
}

// ReadinessResponse tells an orchestrator whether requests can be routed here
type ReadinessResponse struct {
	Ready     bool        `json:"ready"`
	Timestamp time.Time   `json:"timestamp"`
	Store     StoreStatus `json:"store"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall health including store connectivity and pool usage
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	store := h.probe(c.Request.Context())

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Driver:    h.db.Dialector.Name(),
		Store:     store,
	}
	if !store.Reachable {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the store accepts connections
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse "Application is ready"
// @Failure 503 {object} ReadinessResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	store := h.probe(c.Request.Context())

	status := http.StatusOK
	if !store.Reachable {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, ReadinessResponse{
		Ready:     store.Reachable,
		Timestamp: time.Now(),
		Store:     store,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the process is alive and responding; never touches the store
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) StoreStatus {
	sqlDB, err := h.db.DB()
	if err != nil {
		return StoreStatus{Error: err.Error()}
	}

	stats := sqlDB.Stats()
	status := StoreStatus{
		Reachable:       true,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Reachable = false
		status.Error = err.Error()
	}
	return status
}
