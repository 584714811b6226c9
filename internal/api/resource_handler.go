package api

import (
	"net/http"

	"github.com/serafaleo/wingman/internal/api/shared"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/service"
)

// ResourceHandler serves the CRUD endpoints of one user-owned resource
// type. All ownership decisions live in the service; the handler only
// decodes, validates and maps outcomes onto HTTP.
type ResourceHandler[T domain.Resource] struct {
	svc      *service.ResourceService[T]
	name     string
	newModel func() T
}

// NewResourceHandler creates a handler for one resource type. newModel
// must return a fresh zero model ready for JSON decoding.
func NewResourceHandler[T domain.Resource](
	name string,
	svc *service.ResourceService[T],
	newModel func() T,
) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		svc:      svc,
		name:     name,
		newModel: newModel,
	}
}

// List handles GET /{resource}s.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	page, pageSize, ok := getPagination(w, r)
	if !ok {
		return
	}

	res, err := h.svc.List(r.Context(), page, pageSize, userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	models := res.Value()
	if models == nil {
		// An empty page is a JSON array, never null.
		models = []T{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, models)
}

// Get handles GET /{resource}s/{id}.
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.Get(r.Context(), id, userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res.Value())
}

// Create handles POST /{resource}s.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	model := h.newModel()
	if err := shared.DecodeJSON(r, model); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Request body is not valid JSON.")
		return
	}
	if err := shared.ValidateRequest(model); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Failed to create "+h.name+".", err.Error())
		return
	}

	res, err := h.svc.Create(r.Context(), model, userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, IDResponse{ID: res.Value()})
}

// Update handles PUT /{resource}s/{id}.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	model := h.newModel()
	if err := shared.DecodeJSON(r, model); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Request body is not valid JSON.")
		return
	}
	if err := shared.ValidateRequest(model); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Failed to update "+h.name+".", err.Error())
		return
	}

	res, err := h.svc.Update(r.Context(), id, model, userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// Delete handles DELETE /{resource}s/{id}.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.Delete(r.Context(), id, userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
