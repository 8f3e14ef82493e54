package core

import (
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns an encoded hash of the password
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenClaims is the verified content of an access token
type TokenClaims struct {
	UserID    uint64
	Username  string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService issues and verifies signed access tokens
type TokenService interface {
	// Issue signs a token for the user, returning it with its expiry
	Issue(user *entity.User) (string, time.Time, error)
	// Verify checks signature and expiry and returns the embedded claims
	Verify(token string) (*TokenClaims, error)
}
