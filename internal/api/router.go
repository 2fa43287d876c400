// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"userhub/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
	metaHandler *handler.MetaHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// HTML dashboard and health page
	r.Get("/", metaHandler.Dashboard)
	r.Get("/health", healthHandler.Health)

	// API surface
	r.Get("/api", metaHandler.APIInfo)
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{userID}", userHandler.GetUser)
		r.Delete("/{userID}", userHandler.DeleteUser)
	})

	return r
}
