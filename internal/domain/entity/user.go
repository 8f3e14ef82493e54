package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

// Role is the closed set of authorization roles
type Role string

// Roles
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Username and password bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// ParseRole validates a role at the boundary. Empty input defaults to USER and the
// legacy "ROLE_" prefix is accepted.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "ROLE_")

	switch Role(normalized) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.ErrInvalidRole
	}
}

// User owns zero or more cards
type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates registration input. The password hash is produced by the caller.
func NewUser(username, passwordHash string, role Role, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, errs.ErrInvalidRole
	}

	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidateUsername checks the length bounds
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return errs.ErrInvalidRequest
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errs.ErrInvalidRequest
	}
	return nil
}

// IsAdmin reports whether the user has the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the resolved caller handed to the core by the auth layer
type Identity struct {
	UserID   uint64
	Username string
	Role     Role
}

// IsAdmin reports whether the identity carries the ADMIN role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
