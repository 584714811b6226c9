package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/mocks"
	"github.com/serafaleo/wingman/internal/service"
	"github.com/serafaleo/wingman/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authTestEnv struct {
	router http.Handler
	users  *mocks.MockUserStore
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	users := mocks.NewMockUserStore()

	// Tokens shaped like the real ones: refresh tokens are 44 characters.
	counter := 0
	tokens := &mocks.MockTokenIssuer{
		IssueRefreshTokenFn: func() (auth.RefreshToken, error) {
			counter++
			return auth.RefreshToken{
				Token:     fmt.Sprintf("refresh-%036d", counter),
				ExpiresAt: time.Now().UTC().Add(7 * 24 * time.Hour),
			}, nil
		},
	}

	svc := service.NewUserService(users, tokens, &mocks.MockPasswordHasher{}, nil)
	handler := NewAuthHandler(svc)

	r := chi.NewRouter()
	r.Post("/users/signup", handler.SignUp)
	r.Post("/users/login", handler.Login)
	r.Post("/users/refresh", handler.Refresh)
	r.Post("/users/logout", handler.Logout)

	return &authTestEnv{router: r, users: users}
}

func (env *authTestEnv) signUp(t *testing.T, email, password string) uuid.UUID {
	t.Helper()

	w := doJSON(t, env.router, http.MethodPost, "/users/signup", map[string]string{
		"email":                email,
		"password":             password,
		"passwordConfirmation": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SignUpResponse
	require.NoError(t, decodeBody(w, &resp))
	return resp.UserID
}

func (env *authTestEnv) login(t *testing.T, email, password string) service.TokenPair {
	t.Helper()

	w := doJSON(t, env.router, http.MethodPost, "/users/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var pair service.TokenPair
	require.NoError(t, decodeBody(w, &pair))
	return pair
}

func TestSignUpEndpoint(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)
	id := env.signUp(t, "pilot@example.com", "Secret123!")
	assert.NotEqual(t, uuid.Nil, id)
	assert.Contains(t, env.users.Users, "pilot@example.com")
}

func TestSignUpEndpointValidation(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{
			name: "weak password",
			body: map[string]string{
				"email":                "pilot@example.com",
				"password":             "alllowercase",
				"passwordConfirmation": "alllowercase",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "short password",
			body: map[string]string{
				"email":                "pilot@example.com",
				"password":             "Ab1!",
				"passwordConfirmation": "Ab1!",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "confirmation mismatch",
			body: map[string]string{
				"email":                "pilot@example.com",
				"password":             "Secret123!",
				"passwordConfirmation": "Different456!",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			body: map[string]string{
				"email":                "not-an-email",
				"password":             "Secret123!",
				"passwordConfirmation": "Secret123!",
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, env.router, http.MethodPost, "/users/signup", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	assert.Empty(t, env.users.Users)
}

func TestSignUpEndpointConflict(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)
	env.signUp(t, "pilot@example.com", "Secret123!")

	w := doJSON(t, env.router, http.MethodPost, "/users/signup", map[string]string{
		"email":                "pilot@example.com",
		"password":             "Other456!",
		"passwordConfirmation": "Other456!",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email address already used.", decodeProblem(t, w).Detail)
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)
	id := env.signUp(t, "pilot@example.com", "Secret123!")

	pair := env.login(t, "pilot@example.com", "Secret123!")
	assert.Equal(t, id, pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 44)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)
	env.signUp(t, "pilot@example.com", "Secret123!")

	// Wrong password and unknown email produce the same response.
	wrongPassword := doJSON(t, env.router, http.MethodPost, "/users/login", map[string]string{
		"email":    "pilot@example.com",
		"password": "WrongPass1!",
	})
	unknownEmail := doJSON(t, env.router, http.MethodPost, "/users/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "Secret123!",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, "Email or password wrong.", decodeProblem(t, wrongPassword).Detail)
	assert.Equal(t, "Email or password wrong.", decodeProblem(t, unknownEmail).Detail)
}

func TestRefreshEndpoint(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)
	id := env.signUp(t, "pilot@example.com", "Secret123!")
	pair := env.login(t, "pilot@example.com", "Secret123!")

	w := doJSON(t, env.router, http.MethodPost, "/users/refresh", map[string]string{
		"userId":       id.String(),
		"refreshToken": pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed service.TokenPair
	require.NoError(t, decodeBody(w, &refreshed))
	assert.NotEqual(t, pair.RefreshToken, refreshed.RefreshToken)
}

func TestRefreshEndpointRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)
	id := env.signUp(t, "pilot@example.com", "Secret123!")

	// Wrong length never reaches the service.
	w := doJSON(t, env.router, http.MethodPost, "/users/refresh", map[string]string{
		"userId":       id.String(),
		"refreshToken": "too-short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutEndpointRequiresAuthentication(t *testing.T) {
	t.Parallel()

	env := newAuthTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/users/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
