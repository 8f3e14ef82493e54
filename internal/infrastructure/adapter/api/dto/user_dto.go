package dto

import (
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// RegisterRequest represents a public sign-up
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// CreateUserRequest represents an admin-created account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role"`
}

// LoginRequest carries credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse represents a user without credentials
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// NewUserResponse converts a user for output
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}

// NewLoginResponse converts a login result
func NewLoginResponse(result *usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		User:      NewUserResponse(result.User),
	}
}
