// internal/service/validation_test.go
package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		want     []string
	}{
		{
			name:     "ValidInput",
			username: "alice_01",
			email:    "alice@example.com",
			password: "secret123",
			want:     nil,
		},
		{
			name:     "UsernameRequired",
			username: "",
			email:    "alice@example.com",
			password: "secret123",
			want:     []string{"Username is required"},
		},
		{
			name:     "UsernameTooShort",
			username: "ab",
			email:    "alice@example.com",
			password: "secret123",
			want:     []string{"Username must be at least 3 characters long"},
		},
		{
			name:     "UsernameTooLong",
			username: strings.Repeat("a", 51),
			email:    "alice@example.com",
			password: "secret123",
			want:     []string{"Username must be less than 50 characters"},
		},
		{
			name:     "UsernameInvalidCharacters",
			username: "alice smith!",
			email:    "alice@example.com",
			password: "secret123",
			want:     []string{"Username can only contain letters, numbers, and underscores"},
		},
		{
			name:     "UsernameLengthCheckedBeforeCharset",
			username: "a!",
			email:    "alice@example.com",
			password: "secret123",
			want:     []string{"Username must be at least 3 characters long"},
		},
		{
			name:     "UsernameNonASCIIFailsCharsetNotLength",
			username: "héllo",
			email:    "alice@example.com",
			password: "secret123",
			want:     []string{"Username can only contain letters, numbers, and underscores"},
		},
		{
			name:     "UsernameBoundaryLengths",
			username: strings.Repeat("a", 50),
			email:    "alice@example.com",
			password: "secret123",
			want:     nil,
		},
		{
			name:     "EmailRequired",
			username: "alice",
			email:    "",
			password: "secret123",
			want:     []string{"Email is required"},
		},
		{
			name:     "PasswordRequired",
			username: "alice",
			email:    "alice@example.com",
			password: "",
			want:     []string{"Password is required"},
		},
		{
			name:     "PasswordTooShort",
			username: "alice",
			email:    "alice@example.com",
			password: "12345",
			want:     []string{"Password must be at least 6 characters long"},
		},
		{
			name:     "PasswordBoundaryLength",
			username: "alice",
			email:    "alice@example.com",
			password: "123456",
			want:     nil,
		},
		{
			name:     "AllFieldsMissing",
			username: "",
			email:    "",
			password: "",
			want: []string{
				"Username is required",
				"Email is required",
				"Password is required",
			},
		},
		{
			name:     "FailuresAccumulateAcrossFields",
			username: "ab",
			email:    "",
			password: "123",
			want: []string{
				"Username must be at least 3 characters long",
				"Email is required",
				"Password must be at least 6 characters long",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRegistration(tt.username, tt.email, tt.password)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRegistrationEmailSyntax(t *testing.T) {
	t.Run("MalformedAddressReportsReason", func(t *testing.T) {
		got := ValidateRegistration("alice", "not-an-email", "secret123")
		require.Len(t, got, 1)
		assert.True(t, strings.HasPrefix(got[0], "Invalid email: "), "got %q", got[0])
	})

	t.Run("DisplayNameRejected", func(t *testing.T) {
		got := ValidateRegistration("alice", "Alice <alice@example.com>", "secret123")
		require.Len(t, got, 1)
		assert.Equal(t, "Invalid email: address must not contain a display name", got[0])
	})

	t.Run("UppercaseAddressAccepted", func(t *testing.T) {
		got := ValidateRegistration("alice", "Alice@Example.COM", "secret123")
		assert.Empty(t, got)
	})

	t.Run("MissingDomainRejected", func(t *testing.T) {
		got := ValidateRegistration("alice", "alice@", "secret123")
		require.Len(t, got, 1)
		assert.True(t, strings.HasPrefix(got[0], "Invalid email: "), "got %q", got[0])
	})
}
