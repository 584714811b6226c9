package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/api/shared"
	"github.com/serafaleo/wingman/internal/platform/logger"
	"github.com/serafaleo/wingman/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	tokens auth.TokenIssuer
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate validates the access token from the Authorization header
// and adds the user ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithProblem(w, r, http.StatusUnauthorized,
				"Unauthorized", "Authorization header required.")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithProblem(w, r, http.StatusUnauthorized,
				"Unauthorized", "Invalid authorization format.")
			return
		}

		claims, err := m.tokens.ValidateAccessToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithProblem(w, r, http.StatusUnauthorized,
					"Unauthorized", "Token expired.")
			case errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithProblem(w, r, http.StatusUnauthorized,
					"Unauthorized", "Invalid token.")
			default:
				logger.FromContextOrDefault(r.Context(), slog.Default()).
					Error("failed to validate token", slog.Any("error", err))
				shared.RespondWithProblem(w, r, http.StatusInternalServerError,
					"Internal server error", "Authentication error.")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context. Returns the
// user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
