package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/serafaleo/wingman/internal/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongPasswordRule(t *testing.T) {
	t.Parallel()

	type payload struct {
		Password string `validate:"strongpassword"`
	}

	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"all classes present", "Secret123!", true},
		{"missing uppercase", "secret123!", false},
		{"missing lowercase", "SECRET123!", false},
		{"missing digit", "SecretPass!", false},
		{"missing special", "Secret1234", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Struct(payload{Password: tt.password})
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidationMessage(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `validate:"required,email"`
	}

	err := validate.Struct(payload{})
	require.Error(t, err)
	assert.Equal(t, "Field 'email' is required.", ValidationMessage(err))

	err = validate.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, "Field 'email' must be a valid email address.", ValidationMessage(err))
}

func TestStatusFromCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category outcome.Category
		want     int
	}{
		{outcome.CategoryBadRequest, http.StatusBadRequest},
		{outcome.CategoryUnauthorized, http.StatusUnauthorized},
		{outcome.CategoryForbidden, http.StatusForbidden},
		{outcome.CategoryNotFound, http.StatusNotFound},
		{outcome.CategoryConflict, http.StatusConflict},
		{outcome.Category("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromCategory(tt.category))
	}
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32)

	// Distinct per context.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	// Absent gives empty, not a panic.
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestRespondWithFailureWritesProblemJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/aircrafts", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	w := httptest.NewRecorder()

	RespondWithFailure(w, req, outcome.Failure{
		Category: outcome.CategoryNotFound,
		Title:    "Failed to get aircraft.",
		Detail:   "The requested aircraft was not found in the server.",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var problem ProblemResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&problem))
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, "Failed to get aircraft.", problem.Title)
	assert.NotEmpty(t, problem.TraceID)
}
