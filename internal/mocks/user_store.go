package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn             func(ctx context.Context, user *domain.User) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn         func(ctx context.Context, email string) (*domain.User, error)
	UpdateRefreshTokenFn func(ctx context.Context, user *domain.User) error

	// Data for the default implementation, keyed by email
	Users map[string]*domain.User

	// RefreshTokenUpdates counts UpdateRefreshToken calls
	RefreshTokenUpdates int
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	user.ID = uuid.New()
	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// UpdateRefreshToken implements the UserStore interface. The default
// implementation copies only the refresh fields onto the stored user,
// mirroring the narrow-column contract of the real store.
func (m *MockUserStore) UpdateRefreshToken(ctx context.Context, user *domain.User) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, user)
	}

	m.RefreshTokenUpdates++

	for _, stored := range m.Users {
		if stored.ID == user.ID {
			stored.RefreshToken = user.RefreshToken
			stored.RefreshTokenExpiresAt = user.RefreshTokenExpiresAt
			return nil
		}
	}
	// No matching user is not an error; the update is keyed by id and
	// affects zero rows.
	return nil
}
