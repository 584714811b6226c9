package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/outcome"
	"github.com/serafaleo/wingman/internal/platform/logger"
	"github.com/serafaleo/wingman/internal/service/auth"
	"github.com/serafaleo/wingman/internal/store"
)

// Login failures are deliberately generic: the caller cannot tell an unknown
// email from a wrong password, which prevents account enumeration.
const (
	loginErrorTitle  = "Login failed"
	loginErrorDetail = "Email or password wrong."

	refreshErrorTitle = "Failed to refresh session."
)

// SignUpRequest carries the sign-up credentials. It is passed by pointer so
// the service can scrub the plaintext fields after hashing, keeping the
// secrets out of anything downstream that might log the request.
type SignUpRequest struct {
	Email                string
	Password             string
	PasswordConfirmation string
}

// LoginRequest carries the login credentials, passed by pointer for the
// same scrubbing reason as SignUpRequest.
type LoginRequest struct {
	Email    string
	Password string
}

// RefreshRequest identifies the user and presents the refresh token to be
// exchanged for a new token pair.
type RefreshRequest struct {
	UserID       uuid.UUID
	RefreshToken string
}

// TokenPair is the successful payload of login and refresh.
type TokenPair struct {
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// UserService orchestrates the credential lifecycle: sign-up, login,
// refresh-with-rotation and logout. It is stateless and safe for concurrent
// use.
type UserService struct {
	users     store.UserStore
	tokens    auth.TokenIssuer
	passwords auth.PasswordHasher
	logger    *slog.Logger
	timeFunc  func() time.Time // Injectable for testing
}

// NewUserService creates a UserService with its dependencies.
func NewUserService(
	users store.UserStore,
	tokens auth.TokenIssuer,
	passwords auth.PasswordHasher,
	log *slog.Logger,
) *UserService {
	if log == nil {
		log = slog.Default()
	}

	return &UserService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    log.With(slog.String("component", "user_service")),
		timeFunc:  time.Now,
	}
}

// SignUp registers a new account and returns its id. The email is
// normalized to lowercase; a duplicate yields Conflict and leaves the
// existing account untouched. The plaintext password fields are cleared as
// soon as the hash exists.
func (s *UserService) SignUp(
	ctx context.Context,
	req *SignUpRequest,
) (outcome.Result[uuid.UUID], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user := &domain.User{
		Email: domain.NormalizeEmail(req.Email),
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return outcome.Result[uuid.UUID]{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hash

	// The plaintext is no longer needed; scrub it so a downstream log of
	// the request cannot leak it.
	req.Password = ""
	req.PasswordConfirmation = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Info("sign-up rejected, email already registered")
			return outcome.Conflict[uuid.UUID](
				"Failed to create new user.",
				"Email address already used.",
			), nil
		}
		return outcome.Result[uuid.UUID]{}, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))

	return outcome.Ok(user.ID), nil
}

// Login verifies the credentials and, on success, issues a fresh token pair
// and persists the new refresh state. Unknown email and wrong password
// produce byte-identical failures.
func (s *UserService) Login(
	ctx context.Context,
	req *LoginRequest,
) (outcome.Result[TokenPair], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		if store.IsNotFoundError(err) {
			return outcome.Unauthorized[TokenPair](loginErrorTitle, loginErrorDetail), nil
		}
		return outcome.Result[TokenPair]{}, fmt.Errorf("failed to load user by email: %w", err)
	}

	compareErr := s.passwords.Compare(user.HashedPassword, req.Password)
	req.Password = ""

	if compareErr != nil {
		log.Info("login rejected, password mismatch", slog.String("user_id", user.ID.String()))
		return outcome.Unauthorized[TokenPair](loginErrorTitle, loginErrorDetail), nil
	}

	pair, err := s.issueAndSaveTokens(ctx, user)
	if err != nil {
		return outcome.Result[TokenPair]{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))

	return outcome.Ok(pair), nil
}

// Refresh exchanges a valid refresh token for a new token pair, rotating
// the persisted refresh state so the presented token can never be used
// again. An expired token clears the stored refresh state entirely,
// forcing a fresh login.
func (s *UserService) Refresh(
	ctx context.Context,
	req *RefreshRequest,
) (outcome.Result[TokenPair], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return outcome.NotFound[TokenPair](
				refreshErrorTitle,
				"The requested user was not found in the server.",
			), nil
		}
		return outcome.Result[TokenPair]{}, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.RefreshTokenMatches(req.RefreshToken) {
		log.Info("refresh rejected, token mismatch", slog.String("user_id", user.ID.String()))
		return outcome.BadRequest[TokenPair](refreshErrorTitle, "Invalid Refresh Token."), nil
	}

	if user.RefreshTokenExpired(s.timeFunc().UTC()) {
		user.ClearRefreshToken()
		if err := s.users.UpdateRefreshToken(ctx, user); err != nil {
			return outcome.Result[TokenPair]{}, fmt.Errorf("failed to clear refresh token: %w", err)
		}

		log.Info("refresh rejected, token expired", slog.String("user_id", user.ID.String()))
		return outcome.Unauthorized[TokenPair](
			refreshErrorTitle,
			"Refresh Token is expired. A new login is necessary.",
		), nil
	}

	pair, err := s.issueAndSaveTokens(ctx, user)
	if err != nil {
		return outcome.Result[TokenPair]{}, err
	}

	log.Info("session refreshed", slog.String("user_id", user.ID.String()))

	return outcome.Ok(pair), nil
}

// Logout clears the caller's persisted refresh state. It is idempotent:
// logging out an already logged-out user succeeds.
func (s *UserService) Logout(
	ctx context.Context,
	userID uuid.UUID,
) (outcome.Result[outcome.Unit], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user := &domain.User{ID: userID}
	if err := s.users.UpdateRefreshToken(ctx, user); err != nil {
		return outcome.Result[outcome.Unit]{}, fmt.Errorf("failed to clear refresh token: %w", err)
	}

	log.Info("user logged out", slog.String("user_id", userID.String()))

	return outcome.Ok(outcome.Unit{}), nil
}

// issueAndSaveTokens creates a new access/refresh pair and persists the
// refresh state on the user record.
func (s *UserService) issueAndSaveTokens(
	ctx context.Context,
	user *domain.User,
) (TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(ctx, user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.tokens.IssueRefreshToken()
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	user.RefreshToken = &refresh.Token
	user.RefreshTokenExpiresAt = &refresh.ExpiresAt

	if err := s.users.UpdateRefreshToken(ctx, user); err != nil {
		return TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
	}, nil
}
