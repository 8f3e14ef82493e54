package security

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("Hash and compare", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", hash)

		assert.NoError(t, hasher.Compare(hash, "secret123"))
		assert.ErrorIs(t, hasher.Compare(hash, "secret124"), errs.ErrInvalidCredentials)
	})

	t.Run("Same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)
		second, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Malformed hash never matches", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare("not-a-hash", "secret123"), errs.ErrInvalidCredentials)
	})

	t.Run("Password over 72 bytes is rejected", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost())
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).Cost())
	assert.Equal(t, 12, NewBcryptHasher(12).Cost())
}
