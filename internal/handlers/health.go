package handlers

import (
	"net/http"

	"github.com/sbilibin2017/user-profile-api/internal/models"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// example: healthy
	Status string `json:"status"`

	// Status message
	// example: API is running
	Message string `json:"message"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Reports that the API is up.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Message:   "API is running",
			Timestamp: models.Timestamp(),
		})
	}
}
