package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/serafaleo/wingman/internal/outcome"
	"github.com/serafaleo/wingman/internal/platform/logger"
)

// ProblemResponse is the standard error payload, modelled on RFC 7807
// problem details. Every non-2xx response carries one.
type ProblemResponse struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Detail  string `json:"detail,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// RespondWithProblem writes a problem-details error response with the given
// status, title and detail, stamping the request's trace ID.
func RespondWithProblem(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	traceID := GetTraceID(r.Context())

	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("title", title),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ProblemResponse{
		Status:  status,
		Title:   title,
		Detail:  detail,
		TraceID: traceID,
	})
}

// RespondWithFailure maps a business failure onto its HTTP status and
// writes the problem-details response.
func RespondWithFailure(w http.ResponseWriter, r *http.Request, failure outcome.Failure) {
	RespondWithProblem(w, r, StatusFromCategory(failure.Category), failure.Title, failure.Detail)
}

// RespondWithInternalError logs the full error and writes a sanitized 500
// response. The raw error never reaches the client.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContextOrDefault(r.Context(), slog.Default()).Error("request failed",
		slog.Any("error", err),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("trace_id", GetTraceID(r.Context())))

	RespondWithProblem(w, r, http.StatusInternalServerError,
		"Internal server error", "An unexpected error occurred.")
}

// StatusFromCategory maps a business failure category to its HTTP status.
func StatusFromCategory(category outcome.Category) int {
	switch category {
	case outcome.CategoryBadRequest:
		return http.StatusBadRequest
	case outcome.CategoryUnauthorized:
		return http.StatusUnauthorized
	case outcome.CategoryForbidden:
		return http.StatusForbidden
	case outcome.CategoryNotFound:
		return http.StatusNotFound
	case outcome.CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
