// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"userhub/internal/service"
)

// UserHandler handles HTTP requests for user registration and management.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration.
// POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			respondWithJSON(h.logger, w, http.StatusBadRequest, errorResponse{
				Error: "Request body is required",
			})
			return
		}
		respondWithJSON(h.logger, w, http.StatusBadRequest, errorResponse{
			Error: "Invalid request payload: " + err.Error(),
		})
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

// ListUsers returns all registered users, newest first.
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// GetUser returns a single user by ID.
// GET /api/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// DeleteUser removes a user by ID.
// DELETE /api/users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUserByID(r.Context(), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("User with ID %d deleted successfully", id),
	})
}

// userIDParam parses the {userID} route parameter. On failure it writes a
// 400 response and returns ok=false.
func (h *UserHandler) userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "userID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondWithJSON(h.logger, w, http.StatusBadRequest, errorResponse{
			Error: "Invalid user ID",
		})
		return 0, false
	}
	return id, true
}
