package domain

import "github.com/google/uuid"

// Resource is the capability interface every user-owned entity implements.
// It gives the generic service layer compile-time checked access to the
// identifier and owner fields, so no reflection or field-name lookup is
// needed to enforce ownership.
//
// The setter methods require pointer receivers; the service layer is always
// instantiated with pointer types (e.g. *Aircraft, *Flight).
type Resource interface {
	// ResourceID returns the entity's unique identifier, or uuid.Nil when the
	// entity has not been persisted yet.
	ResourceID() uuid.UUID

	// SetResourceID stamps the entity's identifier.
	SetResourceID(id uuid.UUID)

	// OwnerID returns the identifier of the user the entity belongs to.
	OwnerID() uuid.UUID

	// SetOwnerID binds the entity to a user. The service layer calls this on
	// every create and update, overriding whatever the request carried.
	SetOwnerID(id uuid.UUID)
}
