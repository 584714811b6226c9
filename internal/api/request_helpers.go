package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/api/shared"
)

// Default page geometry when the query string leaves it out.
const (
	defaultPage     = 1
	defaultPageSize = 20
)

// getUserIDFromContext extracts the authenticated user's id from the
// request context, where the authentication middleware placed it.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// requireUserID extracts the authenticated user's id or writes a 401
// response. The bool reports whether the handler may continue.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithProblem(w, r, http.StatusUnauthorized,
			"Unauthorized", "Authentication required.")
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter. The bool reports
// whether it was present and valid; on failure a 400 has been written.
func getPathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, paramName))
	if err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Path parameter '"+paramName+"' must be a valid UUID.")
		return uuid.Nil, false
	}
	return id, true
}

// getPagination reads the page and pageSize query parameters, applying
// defaults when absent. A present but non-numeric value yields a 400.
// Out-of-range numbers are passed through; the service rejects them.
func getPagination(w http.ResponseWriter, r *http.Request) (page, pageSize int, ok bool) {
	page, ok = queryInt(w, r, "page", defaultPage)
	if !ok {
		return 0, 0, false
	}
	pageSize, ok = queryInt(w, r, "pageSize", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	return page, pageSize, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Query parameter '"+name+"' must be an integer.")
		return 0, false
	}
	return value, true
}
