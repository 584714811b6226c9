// Package service implements the business orchestration layer: the generic
// ownership-scoped CRUD service and the user authentication service. Both
// are stateless beyond their injected dependencies and return
// outcome.Result values for expected business failures; infrastructure
// failures travel as plain errors and are handled by the HTTP edge.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/outcome"
	"github.com/serafaleo/wingman/internal/platform/logger"
	"github.com/serafaleo/wingman/internal/store"
)

// ResourceService provides list/get/create/update/delete for any user-owned
// resource type, enforcing that callers only ever see and mutate their own
// records. Ownership is always re-verified against the persisted record,
// never trusted from the request body.
//
// Field-level validation of the model (string lengths, formats) is the HTTP
// layer's job and has already happened by the time these methods run.
type ResourceService[T domain.Resource] struct {
	repo   store.ResourceStore[T]
	name   string
	logger *slog.Logger
}

// NewResourceService creates a ResourceService for one resource type.
// The name (e.g. "aircraft") appears in user-facing failure messages.
func NewResourceService[T domain.Resource](
	name string,
	repo store.ResourceStore[T],
	log *slog.Logger,
) *ResourceService[T] {
	if log == nil {
		log = slog.Default()
	}

	return &ResourceService[T]{
		repo:   repo,
		name:   name,
		logger: log.With(slog.String("component", name+"_service")),
	}
}

// List returns one page of the calling user's resources. Page is 1-indexed.
func (s *ResourceService[T]) List(
	ctx context.Context,
	page, pageSize int,
	contextUserID uuid.UUID,
) (outcome.Result[[]T], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 1 || pageSize < 1 {
		log.Debug("rejected list with invalid pagination",
			slog.Int("page", page),
			slog.Int("page_size", pageSize))
		return outcome.BadRequest[[]T](
			fmt.Sprintf("Failed to get %ss.", s.name),
			"Invalid pagination parameters.",
		), nil
	}

	// Cross-user visibility is prevented at the persistence call itself,
	// not by filtering afterwards.
	models, err := s.repo.ListByOwner(ctx, contextUserID, page, pageSize)
	if err != nil {
		return outcome.Result[[]T]{}, fmt.Errorf("failed to list %ss: %w", s.name, err)
	}

	return outcome.Ok(models), nil
}

// Get returns the resource with the given id if it belongs to the caller.
func (s *ResourceService[T]) Get(
	ctx context.Context,
	id, contextUserID uuid.UUID,
) (outcome.Result[T], error) {
	return s.loadOwned(ctx, id, "get", contextUserID)
}

// Create persists a new resource owned by the caller and returns its
// store-assigned id. The owner field of the supplied model is overwritten
// with the caller's id regardless of what the request carried, so owner
// spoofing on create is impossible.
func (s *ResourceService[T]) Create(
	ctx context.Context,
	model T,
	contextUserID uuid.UUID,
) (outcome.Result[uuid.UUID], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	model.SetOwnerID(contextUserID)

	id, err := s.repo.Create(ctx, model)
	if err != nil {
		return outcome.Result[uuid.UUID]{}, fmt.Errorf("failed to create %s: %w", s.name, err)
	}
	model.SetResourceID(id)

	log.Info("resource created",
		slog.String("id", id.String()),
		slog.String("user_id", contextUserID.String()))

	return outcome.Ok(id), nil
}

// Update replaces all fields of an existing resource owned by the caller.
// The id travels in the route; a body id, when present, must agree with it.
// Owner reassignment is never permitted: a body owner that differs from the
// caller is rejected even when the caller owns the record.
func (s *ResourceService[T]) Update(
	ctx context.Context,
	id uuid.UUID,
	model T,
	contextUserID uuid.UUID,
) (outcome.Result[outcome.Unit], error) {
	const action = "update"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if model.ResourceID() != uuid.Nil && model.ResourceID() != id {
		return outcome.BadRequest[outcome.Unit](
			s.errorTitle(id, action),
			"Body object ID and route ID are different.",
		), nil
	}

	validation, err := s.loadOwned(ctx, id, action, contextUserID)
	if err != nil {
		return outcome.Result[outcome.Unit]{}, err
	}
	if validation.Failed() {
		return outcome.Fail[outcome.Unit](validation.Failure()), nil
	}

	if model.OwnerID() != uuid.Nil && model.OwnerID() != contextUserID {
		return outcome.BadRequest[outcome.Unit](
			s.errorTitle(id, action),
			"Body object UserID was changed, which is not permitted.",
		), nil
	}

	model.SetResourceID(id)
	model.SetOwnerID(contextUserID)

	updated, err := s.repo.Update(ctx, model)
	if err != nil {
		return outcome.Result[outcome.Unit]{}, fmt.Errorf("failed to update %s: %w", s.name, err)
	}
	if !updated {
		// The record vanished between the ownership check and the update.
		return outcome.Fail[outcome.Unit](s.notFoundFailure(id, action)), nil
	}

	log.Info("resource updated",
		slog.String("id", id.String()),
		slog.String("user_id", contextUserID.String()))

	return outcome.Ok(outcome.Unit{}), nil
}

// Delete removes an existing resource owned by the caller.
func (s *ResourceService[T]) Delete(
	ctx context.Context,
	id, contextUserID uuid.UUID,
) (outcome.Result[outcome.Unit], error) {
	const action = "delete"
	log := logger.FromContextOrDefault(ctx, s.logger)

	validation, err := s.loadOwned(ctx, id, action, contextUserID)
	if err != nil {
		return outcome.Result[outcome.Unit]{}, err
	}
	if validation.Failed() {
		return outcome.Fail[outcome.Unit](validation.Failure()), nil
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return outcome.Result[outcome.Unit]{}, fmt.Errorf("failed to delete %s: %w", s.name, err)
	}
	if !deleted {
		return outcome.Fail[outcome.Unit](s.notFoundFailure(id, action)), nil
	}

	log.Info("resource deleted",
		slog.String("id", id.String()),
		slog.String("user_id", contextUserID.String()))

	return outcome.Ok(outcome.Unit{}), nil
}

// loadOwned fetches the persisted record and verifies the caller owns it.
// Absent records yield NotFound; records owned by someone else yield
// Forbidden. Both paths perform the same single fetch.
func (s *ResourceService[T]) loadOwned(
	ctx context.Context,
	id uuid.UUID,
	action string,
	contextUserID uuid.UUID,
) (outcome.Result[T], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	model, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return outcome.Fail[T](s.notFoundFailure(id, action)), nil
		}
		return outcome.Result[T]{}, fmt.Errorf("failed to load %s: %w", s.name, err)
	}

	if model.OwnerID() != contextUserID {
		log.Warn("denied access to resource owned by another user",
			slog.String("id", id.String()),
			slog.String("user_id", contextUserID.String()))
		return outcome.Forbidden[T](
			s.errorTitle(id, action),
			fmt.Sprintf("The current user does not have permission to access this %s.", s.name),
		), nil
	}

	return outcome.Ok(model), nil
}

func (s *ResourceService[T]) notFoundFailure(id uuid.UUID, action string) outcome.Failure {
	return outcome.Failure{
		Category: outcome.CategoryNotFound,
		Title:    s.errorTitle(id, action),
		Detail:   fmt.Sprintf("The requested %s was not found in the server.", s.name),
	}
}

func (s *ResourceService[T]) errorTitle(id uuid.UUID, action string) string {
	return fmt.Sprintf("Failed to %s %s ID %s.", action, s.name, id)
}
