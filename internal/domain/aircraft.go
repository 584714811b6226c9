package domain

import "github.com/google/uuid"

// Aircraft is a user-owned airframe identified by its registration marks
// (e.g. "PP-ABC") and ICAO type designator (e.g. "C172").
type Aircraft struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Registration string    `json:"registration"`
	TypeICAO     string    `json:"typeICAO"`
}

// Compile-time check that *Aircraft satisfies the ownership capability.
var _ Resource = (*Aircraft)(nil)

// ResourceID implements Resource.
func (a *Aircraft) ResourceID() uuid.UUID { return a.ID }

// SetResourceID implements Resource.
func (a *Aircraft) SetResourceID(id uuid.UUID) { a.ID = id }

// OwnerID implements Resource.
func (a *Aircraft) OwnerID() uuid.UUID { return a.UserID }

// SetOwnerID implements Resource.
func (a *Aircraft) SetOwnerID(id uuid.UUID) { a.UserID = id }

// Validate checks the aircraft has the fields persistence requires.
func (a *Aircraft) Validate() error {
	if a.Registration == "" {
		return NewValidationError("registration", "cannot be empty", ErrValidation)
	}
	if a.TypeICAO == "" {
		return NewValidationError("typeICAO", "cannot be empty", ErrValidation)
	}
	return nil
}
