package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors.
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. The plaintext password never lives on
// this struct; only the bcrypt hash is carried, and it is excluded from JSON.
//
// RefreshToken and RefreshTokenExpiresAt hold the currently valid refresh
// credential. Both are nil when the user is logged out. They are rotated
// together on every successful login and refresh.
type User struct {
	ID                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	HashedPassword        string     `json:"-"`
	RefreshToken          *string    `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
}

// NormalizeEmail lowercases an email address. Emails are unique
// case-insensitively, so every inbound email passes through here before
// lookups or persistence.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// Validate checks the user has the fields persistence requires.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// ClearRefreshToken drops the refresh credential, logging the user out of
// the refresh flow until the next login.
func (u *User) ClearRefreshToken() {
	u.RefreshToken = nil
	u.RefreshTokenExpiresAt = nil
}

// RefreshTokenMatches reports whether the stored refresh token is present
// and exactly equals the supplied token.
func (u *User) RefreshTokenMatches(token string) bool {
	return u.RefreshToken != nil && *u.RefreshToken != "" && *u.RefreshToken == token
}

// RefreshTokenExpired reports whether the stored refresh token has expired
// relative to now. A missing expiry counts as expired.
func (u *User) RefreshTokenExpired(now time.Time) bool {
	return u.RefreshTokenExpiresAt == nil || !u.RefreshTokenExpiresAt.After(now)
}
