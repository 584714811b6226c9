// Package auth provides the credential primitives of the authentication
// subsystem: password hashing/verification and token issuing/validation.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
)

// TokenIssuer defines operations for creating and validating the two kinds
// of credentials the API hands out.
//
// Access tokens are signed JWTs carrying the user's id and email; they prove
// identity for a single request and expire within minutes. Refresh tokens
// are opaque random strings with no claims at all; they are bearer secrets
// matched by exact comparison against the persisted value and expire after
// days.
type TokenIssuer interface {
	// IssueAccessToken creates a signed JWT access token for the user.
	IssueAccessToken(ctx context.Context, user *domain.User) (string, error)

	// IssueRefreshToken creates a fresh opaque refresh token with its
	// expiry. A new one is generated on every login and refresh; tokens are
	// never reused.
	IssueRefreshToken() (RefreshToken, error)

	// ValidateAccessToken verifies the token's signature, expiry, issuer and
	// audience, and extracts the claims. Returns ErrExpiredToken or
	// ErrInvalidToken on failure.
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of an access token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// Email is the user's email address at issue time.
	Email string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// RefreshToken is the transient value produced by IssueRefreshToken. The
// token itself is persisted on the user record; this struct is never stored
// as-is.
type RefreshToken struct {
	Token     string
	ExpiresAt time.Time
}
