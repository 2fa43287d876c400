// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"userhub/internal/domain"
	"userhub/internal/repository"
	"userhub/internal/security"
	"userhub/internal/util"
)

// UserService defines the interface for user account business logic.
type UserService interface {
	// Register validates the input, hashes the password, and persists a new
	// user. It returns *util.ValidationError for rule failures and
	// *util.ConflictError when username or email is already taken.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// GetUserByID returns the user with the given ID, or util.ErrNotFound.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	// DeleteUserByID removes the user with the given ID, or returns
	// util.ErrNotFound when no such user exists.
	DeleteUserByID(ctx context.Context, id int64) error
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor // Shared connection pool (e.g., *sqlx.DB)
	userRepo   repository.UserRepository
	hasher     security.PasswordHasher
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher security.PasswordHasher,
) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
	}
}

// Register creates a new user account. The password is hashed only after
// validation passes, and the email is lowercased before storage.
func (s *userService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if details := ValidateRegistration(username, email, password); len(details) > 0 {
		return nil, util.NewValidationError(details)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(username, strings.ToLower(email), passwordHash)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		var conflict *util.ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	return user, nil
}

// ListUsers returns all registered users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUserByID returns a single user by ID.
func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get user: failed to get user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUserByID removes a user by ID. Concurrent deletes of the same ID
// resolve at the store: exactly one caller succeeds, the rest get
// util.ErrNotFound.
func (s *userService) DeleteUserByID(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteUserByID(ctx, s.dbExecutor, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete user: failed to delete user %d: %w", id, err)
	}
	return nil
}
