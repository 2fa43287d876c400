// internal/api/handler/health.go
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"userhub/internal/api/web"
	"userhub/internal/service"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	service service.HealthService
	logger  *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(svc service.HealthService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: svc,
		logger:  logger,
	}
}

// healthView carries the fields rendered by the health page template.
type healthView struct {
	Healthy   bool
	Database  string
	Version   string
	UserCount int64
	Error     string
	CheckedAt string
}

// Health reports service health. Clients accepting JSON get the machine
// shape; everyone else gets the status page. Both use 200 when healthy
// and 503 otherwise.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check(r.Context())

	code := http.StatusOK
	if status.Status != service.StatusHealthy {
		code = http.StatusServiceUnavailable
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		database := "connected"
		if !status.DatabaseConnected {
			database = "disconnected"
		}
		respondWithJSON(h.logger, w, code, map[string]string{
			"status":    status.Status,
			"database":  database,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	database := "Connected"
	if !status.DatabaseConnected {
		database = "Disconnected"
	}
	view := healthView{
		Healthy:   status.DatabaseConnected,
		Database:  database,
		Version:   status.DatabaseVersion,
		UserCount: status.UserCount,
		Error:     status.Err,
		CheckedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := web.HealthTemplate.Execute(w, view); err != nil {
		h.logger.Error("Failed to render health page", "error", err)
	}
}
