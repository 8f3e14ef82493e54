package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected Role
	}{
		{"", RoleUser},
		{"USER", RoleUser},
		{"user", RoleUser},
		{"ROLE_USER", RoleUser},
		{"ADMIN", RoleAdmin},
		{"role_admin", RoleAdmin},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}

	t.Run("Unknown role is rejected", func(t *testing.T) {
		_, err := ParseRole("SUPERUSER")
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid user", func(t *testing.T) {
		user, err := NewUser("  alice ", "hash", RoleUser, now)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.IsAdmin())
		assert.Equal(t, now, user.CreatedAt)
	})

	t.Run("Username bounds", func(t *testing.T) {
		_, err := NewUser("ab", "hash", RoleUser, now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewUser(strings.Repeat("a", 51), "hash", RoleUser, now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Role outside the closed set", func(t *testing.T) {
		_, err := NewUser("alice", "hash", Role("ROOT"), now)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.ErrorIs(t, ValidatePassword("short"), errs.ErrInvalidRequest)
}

func TestIdentity_IsAdmin(t *testing.T) {
	assert.True(t, Identity{UserID: 1, Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{UserID: 1, Role: RoleUser}.IsAdmin())
}
