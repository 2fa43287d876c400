// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"userhub/internal/util"
)

// DefaultTimeout bounds request handling time via the router's timeout middleware.
const DefaultTimeout = 15 * time.Second

// errorResponse is the wire shape of every error reply. Details carries the
// validation message list on 400s and the underlying error text on 500s.
type errorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// respondWithJSON writes payload as a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps a service error to its HTTP status and body.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	if valErr, ok := util.AsValidationError(err); ok {
		respondWithJSON(logger, w, http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Details: valErr.Details,
		})
		return
	}
	if conflict, ok := util.AsConflictError(err); ok {
		respondWithJSON(logger, w, http.StatusConflict, errorResponse{
			Error: conflictMessage(conflict.Field),
		})
		return
	}
	if util.IsError(err, util.ErrNotFound) {
		respondWithJSON(logger, w, http.StatusNotFound, errorResponse{
			Error: "User not found",
		})
		return
	}

	logger.Error("Unhandled service error", "error", err)
	respondWithJSON(logger, w, http.StatusInternalServerError, errorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}

// conflictMessage renders the user-facing text for a uniqueness conflict.
func conflictMessage(field string) string {
	switch field {
	case "username":
		return "Username already exists"
	case "email":
		return "Email already exists"
	default:
		return "Database integrity error"
	}
}
