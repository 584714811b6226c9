package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/store"
)

// MockResourceStore implements store.ResourceStore[T] for testing. The
// default implementation is an in-memory map with id ordering, matching the
// pagination contract of the real stores.
type MockResourceStore[T domain.Resource] struct {
	// Function fields for customizable behavior
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (T, error)
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]T, error)
	CreateFn      func(ctx context.Context, model T) (uuid.UUID, error)
	UpdateFn      func(ctx context.Context, model T) (bool, error)
	DeleteByIDFn  func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for the default implementation
	Resources map[uuid.UUID]T
}

// Compile-time check against one concrete instantiation
var _ store.ResourceStore[*domain.Aircraft] = (*MockResourceStore[*domain.Aircraft])(nil)

// NewMockResourceStore creates a new mock store with initialized defaults
func NewMockResourceStore[T domain.Resource]() *MockResourceStore[T] {
	return &MockResourceStore[T]{
		Resources: make(map[uuid.UUID]T),
	}
}

// GetByID implements the ResourceStore interface
func (m *MockResourceStore[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	model, exists := m.Resources[id]
	if !exists {
		var zero T
		return zero, store.ErrNotFound
	}
	return model, nil
}

// ListByOwner implements the ResourceStore interface
func (m *MockResourceStore[T]) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, pageSize int,
) ([]T, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID, page, pageSize)
	}

	var owned []T
	for _, model := range m.Resources {
		if model.OwnerID() == ownerID {
			owned = append(owned, model)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].ResourceID().String() < owned[j].ResourceID().String()
	})

	offset := (page - 1) * pageSize
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + pageSize
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

// Create implements the ResourceStore interface
func (m *MockResourceStore[T]) Create(ctx context.Context, model T) (uuid.UUID, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, model)
	}

	id := uuid.New()
	model.SetResourceID(id)
	m.Resources[id] = model
	return id, nil
}

// Update implements the ResourceStore interface
func (m *MockResourceStore[T]) Update(ctx context.Context, model T) (bool, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, model)
	}

	if _, exists := m.Resources[model.ResourceID()]; !exists {
		return false, nil
	}
	m.Resources[model.ResourceID()] = model
	return true, nil
}

// DeleteByID implements the ResourceStore interface
func (m *MockResourceStore[T]) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	if _, exists := m.Resources[id]; !exists {
		return false, nil
	}
	delete(m.Resources, id)
	return true, nil
}
