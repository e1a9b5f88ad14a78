package services

import (
	"context"

	"filedrive/internal/domain/models"
)

// RegisterRequest carries registration credentials.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is a logged-in user with a freshly issued token.
type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService implements account registration and credential login.
type AuthService interface {
	// Register creates a new account. Registration does not log the user
	// in; no token is issued.
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)

	// Login verifies credentials and issues a signed token.
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)

	// GetUser retrieves the account behind an authenticated request.
	GetUser(ctx context.Context, userID string) (*models.User, error)
}
