// internal/api/handler/meta_test.go
package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetaRouter() http.Handler {
	h := NewMetaHandler(testLogger())
	r := chi.NewRouter()
	r.Get("/", h.Dashboard)
	r.Get("/api", h.APIInfo)
	return r
}

func TestDashboardEndpoint(t *testing.T) {
	router := newMetaRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "User Management")
}

func TestAPIInfoEndpoint(t *testing.T) {
	router := newMetaRouter()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "User Registration System API", body["name"])
	assert.Equal(t, "1.0.0", body["version"])

	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Register a new user", endpoints["POST /api/users"])
	assert.Equal(t, "List all users", endpoints["GET /api/users"])
	assert.Equal(t, "Get user by ID", endpoints["GET /api/users/{id}"])
	assert.Equal(t, "Delete user by ID", endpoints["DELETE /api/users/{id}"])
	assert.Equal(t, "Health check", endpoints["GET /health"])
}
