package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	serviceName  string
	engineClient interfaces.EngineClient // nil in mock mode
	startTime    time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(serviceName string, engineClient interfaces.EngineClient) *HealthHandler {
	return &HealthHandler{
		serviceName:  serviceName,
		engineClient: engineClient,
		startTime:    time.Now(),
	}
}

// Health handles the health check endpoint
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)

	// The core engine is only a dependency when one is configured.
	if h.engineClient != nil {
		if err := h.engineClient.CheckHealth(ctx); err != nil {
			checks["core_engine"] = "unhealthy: " + err.Error()
		} else {
			checks["core_engine"] = "healthy"
		}
	} else {
		checks["core_engine"] = "mock mode"
	}

	status := "healthy"
	for _, check := range checks {
		if check != "healthy" && check != "mock mode" {
			status = "degraded"
			break
		}
	}

	response := models.HealthStatus{
		Status:    status,
		Service:   h.serviceName,
		Version:   getVersion(),
		Uptime:    formatDuration(time.Since(h.startTime)),
		Checks:    checks,
		Timestamp: time.Now(),
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// getVersion returns the service version
func getVersion() string {
	// In production, this would come from build info
	return "1.0.0"
}

// formatDuration formats a duration to a human-readable string
func formatDuration(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
