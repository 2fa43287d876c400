// internal/security/password_test.go
package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashProducesSaltedHashes(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", first, "hash must not equal the plaintext")
	assert.NotEqual(t, first, second, "each hash must use a fresh salt")

	assert.NoError(t, hasher.Compare(first, "secret123"))
	assert.NoError(t, hasher.Compare(second, "secret123"))
}

func TestCompareRejectsWrongPassword(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.Error(t, hasher.Compare(hashed, "not-the-password"))
	assert.Error(t, hasher.Compare("not-a-hash", "secret123"))
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher()

	// bcrypt refuses inputs longer than 72 bytes.
	_, err := hasher.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}
