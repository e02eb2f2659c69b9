package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the health check body
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

// RootResponse is the service banner returned at /.
type RootResponse struct {
	Message       string              `json:"message"`
	Version       string              `json:"version"`
	Documentation string              `json:"documentation"`
	Endpoints     map[string][]string `json:"endpoints"`
}

// NewRootHandler returns a handler describing the API surface.
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message:       "Internship Application Portal API",
			Version:       version,
			Documentation: "/swagger/index.html",
			Endpoints: map[string][]string{
				"auth":          {"/api/auth/register", "/api/auth/login"},
				"internships":   {"/api/internships"},
				"applications":  {"/api/applications"},
				"notifications": {"/api/notifications/email"},
			},
		})
	}
}
