package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and stamps the store-assigned ID onto it.
	// The caller must have hashed the password already.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their (lowercased) email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateRefreshToken persists only the refresh token and its expiry,
	// keyed by the user's ID. Other columns are never touched, so a
	// concurrent profile edit cannot be clobbered by a token rotation.
	// Nil token and expiry clear the stored refresh state.
	UpdateRefreshToken(ctx context.Context, user *domain.User) error
}
