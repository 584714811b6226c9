// Package store provides abstractions for data persistence. It defines the
// contracts the service layer consumes; concrete implementations live in
// internal/platform/postgres.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
)

// ResourceStore is the persistence contract for any user-owned resource
// type. The generic service layer depends on exactly these semantics:
//
//   - GetByID is unscoped; authorization against the owner happens in the
//     service, not here.
//   - ListByOwner only ever returns records belonging to ownerID. Page is
//     1-indexed and the offset is (page-1)*pageSize. Ordering must be
//     stable across calls so pages never duplicate or skip records under
//     static data.
//   - Create lets the backing store assign the identifier; any ID supplied
//     on the model is ignored. The assigned ID is returned.
//   - Update replaces the full record and reports whether a matching row
//     existed. DeleteByID reports the same.
type ResourceStore[T domain.Resource] interface {
	// GetByID retrieves a resource by its unique ID.
	// Returns ErrNotFound if the resource does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (T, error)

	// ListByOwner retrieves one page of the owner's resources.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]T, error)

	// Create saves a new resource and returns the store-assigned ID.
	Create(ctx context.Context, model T) (uuid.UUID, error)

	// Update replaces all fields of an existing resource.
	// Returns false if no row with the model's ID existed.
	Update(ctx context.Context, model T) (bool, error)

	// DeleteByID removes a resource. Returns false if no row existed.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}
