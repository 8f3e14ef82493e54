package security

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	mockcore "github.com/amirhossein-jamali/card-ledger/mocks/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newClock(t *testing.T, now *time.Time) *mockcore.MockTimeProvider {
	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().RunAndReturn(func() time.Time { return *now }).Maybe()
	return tp
}

func testUser() *entity.User {
	return &entity.User{ID: 7, Username: "alice", Role: entity.RoleAdmin}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := issuedAt
	svc, err := NewJWTService("top-secret", "card-ledger", time.Hour, newClock(t, &now))
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue(testUser())
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestJWTService_Rejections(t *testing.T) {
	now := issuedAt
	clock := newClock(t, &now)

	svc, err := NewJWTService("top-secret", "card-ledger", time.Hour, clock)
	require.NoError(t, err)
	token, _, err := svc.Issue(testUser())
	require.NoError(t, err)

	t.Run("Expired token", func(t *testing.T) {
		now = issuedAt.Add(2 * time.Hour)
		defer func() { now = issuedAt }()

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other, err := NewJWTService("another-secret", "card-ledger", time.Hour, clock)
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		other, err := NewJWTService("top-secret", "someone-else", time.Hour, clock)
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		claims := AccessClaims{
			UserID: 7,
			Role:   "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "card-ledger",
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService("", "card-ledger", time.Hour, nil)
	assert.Error(t, err)

	_, err = NewJWTService("secret", "card-ledger", 0, nil)
	assert.Error(t, err)
}
