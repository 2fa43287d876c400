// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"userhub/internal/domain"
	"userhub/internal/repository"
	"userhub/internal/util"
)

// uniqueViolation is the PostgreSQL SQLSTATE class for unique constraint failures.
const uniqueViolation = pq.ErrorCode("23505")

// Constraint names from the users table definition. Classification relies on
// these names rather than on error message text.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Stateless: methods receive a DBExecutor per call.
}

// NewUserRepository creates a new UserRepository.
// The db parameter is not stored in the struct, but passed to methods.
// This constructor is now mainly for type assertion and consistency.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user using the provided DBExecutor.
// ID and CreatedAt are assigned by the database and written back into user.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash)
              VALUES ($1, $2, $3) RETURNING id, created_at`
	err := q.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if conflict := classifyConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListUsers retrieves all users ordered newest first, with the insertion
// order as a tiebreak for identical timestamps.
func (r *UserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, username, email, created_at FROM users
              ORDER BY created_at DESC, id DESC`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, email, created_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// DeleteUserByID removes a user by their ID. The single DELETE statement
// makes concurrent deletes of the same ID resolve to exactly one winner:
// the loser sees zero affected rows and gets util.ErrNotFound.
func (r *UserRepository) DeleteUserByID(ctx context.Context, q repository.DBExecutor, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	res, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for user %d: %w", id, err)
	}
	if affected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// classifyConflict inspects err for a PostgreSQL unique violation and maps
// the violated constraint to the conflicting field. It returns nil when err
// is not a uniqueness conflict.
func classifyConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return nil
	}
	switch pqErr.Constraint {
	case usernameConstraint:
		return util.NewConflictError("username")
	case emailConstraint:
		return util.NewConflictError("email")
	default:
		return util.NewConflictError("")
	}
}
