// internal/domain/user.go
package domain

import "time"

// User represents a registered account.
// PasswordHash is excluded from JSON serialization and must never leave the API.
type User struct {
	ID           int64     `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	Username     string    `db:"username" json:"username"`     // Unique, case-sensitive
	Email        string    `db:"email" json:"email"`           // Unique, stored lowercased
	PasswordHash string    `db:"password_hash" json:"-"`       // Salted adaptive hash, never plaintext
	CreatedAt    time.Time `db:"created_at" json:"created_at"` // Assigned by the store on insert
}

// NewUser creates a User ready for insertion. ID and CreatedAt are
// populated by the store when the row is written.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
