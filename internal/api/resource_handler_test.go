package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/api/shared"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/mocks"
	"github.com/serafaleo/wingman/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withUser injects an authenticated user id the way the auth middleware
// does in production.
func withUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newAircraftRouter(
	repo *mocks.MockResourceStore[*domain.Aircraft],
	userID uuid.UUID,
) http.Handler {
	svc := service.NewResourceService[*domain.Aircraft]("aircraft", repo, nil)
	handler := NewAircraftHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		if userID != uuid.Nil {
			r.Use(withUser(userID))
		}
		r.Get("/aircrafts", handler.List)
		r.Post("/aircrafts", handler.Create)
		r.Get("/aircrafts/{id}", handler.Get)
		r.Put("/aircrafts/{id}", handler.Update)
		r.Delete("/aircrafts/{id}", handler.Delete)
	})
	return r
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, target string,
	body interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) shared.ProblemResponse {
	t.Helper()

	var problem shared.ProblemResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&problem))
	return problem
}

func TestAircraftCreateEndpoint(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	owner := uuid.New()
	router := newAircraftRouter(repo, owner)

	w := doJSON(t, router, http.MethodPost, "/aircrafts", map[string]string{
		"registration": "PP-ABC",
		"typeICAO":     "C172",
		// A forged owner in the body must be ignored.
		"userId": uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp IDResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, owner, repo.Resources[resp.ID].OwnerID())
}

func TestAircraftCreateEndpointValidation(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	router := newAircraftRouter(repo, uuid.New())

	w := doJSON(t, router, http.MethodPost, "/aircrafts", map[string]string{
		"registration": "",
		"typeICAO":     "C172",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.Resources)
}

func TestAircraftGetEndpoint(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	owner := uuid.New()
	aircraft := &domain.Aircraft{
		ID:           uuid.New(),
		UserID:       owner,
		Registration: "PP-ABC",
		TypeICAO:     "C172",
	}
	repo.Resources[aircraft.ID] = aircraft

	router := newAircraftRouter(repo, owner)

	w := doJSON(t, router, http.MethodGet, "/aircrafts/"+aircraft.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Aircraft
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, aircraft.Registration, got.Registration)
}

func TestAircraftGetEndpointForbidden(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	aircraft := &domain.Aircraft{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Registration: "PP-ABC",
		TypeICAO:     "C172",
	}
	repo.Resources[aircraft.ID] = aircraft

	// A different authenticated user asks for it.
	router := newAircraftRouter(repo, uuid.New())

	w := doJSON(t, router, http.MethodGet, "/aircrafts/"+aircraft.ID.String(), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	problem := decodeProblem(t, w)
	assert.Equal(t, http.StatusForbidden, problem.Status)
	assert.Equal(t,
		"The current user does not have permission to access this aircraft.",
		problem.Detail)
}

func TestAircraftGetEndpointInvalidID(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	router := newAircraftRouter(repo, uuid.New())

	w := doJSON(t, router, http.MethodGet, "/aircrafts/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAircraftListEndpoint(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	owner := uuid.New()
	router := newAircraftRouter(repo, owner)

	// Empty page is a JSON array, not null.
	w := doJSON(t, router, http.MethodGet, "/aircrafts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestAircraftListEndpointBadPagination(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	router := newAircraftRouter(repo, uuid.New())

	// Non-numeric page is rejected at the edge.
	w := doJSON(t, router, http.MethodGet, "/aircrafts?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Out-of-range page is rejected by the service.
	w = doJSON(t, router, http.MethodGet, "/aircrafts?page=0", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid pagination parameters.", decodeProblem(t, w).Detail)
}

func TestAircraftUpdateEndpointIDMismatch(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	router := newAircraftRouter(repo, uuid.New())

	w := doJSON(t, router, http.MethodPut, "/aircrafts/"+uuid.NewString(), map[string]string{
		"id":           uuid.NewString(),
		"registration": "PP-ABC",
		"typeICAO":     "C172",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Body object ID and route ID are different.", decodeProblem(t, w).Detail)
}

func TestAircraftDeleteEndpoint(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	owner := uuid.New()
	aircraft := &domain.Aircraft{
		ID:           uuid.New(),
		UserID:       owner,
		Registration: "PP-ABC",
		TypeICAO:     "C172",
	}
	repo.Resources[aircraft.ID] = aircraft

	router := newAircraftRouter(repo, owner)

	w := doJSON(t, router, http.MethodDelete, "/aircrafts/"+aircraft.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.Resources)

	w = doJSON(t, router, http.MethodDelete, "/aircrafts/"+aircraft.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAircraftEndpointsRequireAuthentication(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockResourceStore[*domain.Aircraft]()
	router := newAircraftRouter(repo, uuid.Nil) // no user in context

	w := doJSON(t, router, http.MethodGet, "/aircrafts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/aircrafts", map[string]string{
		"registration": "PP-ABC",
		"typeICAO":     "C172",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, repo.Resources)
}
