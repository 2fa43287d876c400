// internal/repository/user_repo.go
package repository

import (
	"context"

	"userhub/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser inserts a new user. On success the store-assigned ID and
	// CreatedAt are written back into user. A uniqueness violation is
	// returned as *util.ConflictError.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// GetUserByID retrieves a user by ID, or util.ErrNotFound.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// DeleteUserByID removes a user by ID. util.ErrNotFound is returned
	// when no row was deleted.
	DeleteUserByID(ctx context.Context, q DBExecutor, id int64) error
}
