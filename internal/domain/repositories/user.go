package repositories

import (
	"context"

	"filedrive/internal/domain/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// Create persists a new user. A duplicate username yields domain.ErrConflict.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername retrieves a user by username. Returns domain.ErrNotFound
	// when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID retrieves a user by ID. Returns domain.ErrNotFound when no
	// such user exists.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
