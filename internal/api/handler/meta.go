// internal/api/handler/meta.go
package handler

import (
	"log/slog"
	"net/http"

	"userhub/internal/api/web"
)

// MetaHandler serves the dashboard page and the API info endpoint.
type MetaHandler struct {
	logger *slog.Logger
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(logger *slog.Logger) *MetaHandler {
	return &MetaHandler{logger: logger}
}

// Dashboard serves the HTML frontend.
// GET /
func (h *MetaHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(web.Dashboard); err != nil {
		h.logger.Error("Failed to write dashboard page", "error", err)
	}
}

// APIInfo describes the available endpoints.
// GET /api
func (h *MetaHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"name":    "User Registration System API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"POST /api/users":        "Register a new user",
			"GET /api/users":         "List all users",
			"GET /api/users/{id}":    "Get user by ID",
			"DELETE /api/users/{id}": "Delete user by ID",
			"GET /health":            "Health check",
		},
	})
}
