package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/service/auth"
)

// MockTokenIssuer implements auth.TokenIssuer for testing
type MockTokenIssuer struct {
	// IssueAccessTokenFn allows test cases to mock IssueAccessToken
	IssueAccessTokenFn func(ctx context.Context, user *domain.User) (string, error)

	// IssueRefreshTokenFn allows test cases to mock IssueRefreshToken
	IssueRefreshTokenFn func() (auth.RefreshToken, error)

	// ValidateAccessTokenFn allows test cases to mock ValidateAccessToken
	ValidateAccessTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	AccessToken    string
	AccessErr      error
	RefreshExpiry  time.Time
	RefreshErr     error
	Claims         *auth.Claims
	ValidateErr    error
	refreshCounter int
}

// Ensure MockTokenIssuer implements auth.TokenIssuer
var _ auth.TokenIssuer = (*MockTokenIssuer)(nil)

// IssueAccessToken implements the auth.TokenIssuer interface
func (m *MockTokenIssuer) IssueAccessToken(ctx context.Context, user *domain.User) (string, error) {
	if m.IssueAccessTokenFn != nil {
		return m.IssueAccessTokenFn(ctx, user)
	}

	if m.AccessErr != nil {
		return "", m.AccessErr
	}
	if m.AccessToken != "" {
		return m.AccessToken, nil
	}
	return "access-token-" + user.ID.String(), nil
}

// IssueRefreshToken implements the auth.TokenIssuer interface. The default
// implementation returns a distinct token on every call so rotation is
// observable in tests.
func (m *MockTokenIssuer) IssueRefreshToken() (auth.RefreshToken, error) {
	if m.IssueRefreshTokenFn != nil {
		return m.IssueRefreshTokenFn()
	}

	if m.RefreshErr != nil {
		return auth.RefreshToken{}, m.RefreshErr
	}

	m.refreshCounter++
	expiry := m.RefreshExpiry
	if expiry.IsZero() {
		expiry = time.Now().UTC().Add(7 * 24 * time.Hour)
	}

	return auth.RefreshToken{
		Token:     fmt.Sprintf("refresh-token-%d", m.refreshCounter),
		ExpiresAt: expiry,
	}, nil
}

// ValidateAccessToken implements the auth.TokenIssuer interface
func (m *MockTokenIssuer) ValidateAccessToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateAccessTokenFn != nil {
		return m.ValidateAccessTokenFn(ctx, tokenString)
	}

	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
