package domain

import (
	"time"

	"github.com/google/uuid"
)

// FlightStatus tracks where a flight is in its lifecycle.
type FlightStatus string

const (
	FlightStatusPlanned   FlightStatus = "planned"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusCompleted FlightStatus = "completed"
	FlightStatusCanceled  FlightStatus = "canceled"
)

// IsValid reports whether the status is one of the known values.
func (s FlightStatus) IsValid() bool {
	switch s {
	case FlightStatusPlanned, FlightStatusDeparted, FlightStatusCompleted, FlightStatusCanceled:
		return true
	}
	return false
}

// Flight is a user-owned flight record referencing one of the user's
// aircraft. Aerodromes are identified by their four-letter ICAO codes.
type Flight struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"userId"`
	AircraftID    uuid.UUID     `json:"aircraftId"`
	Status        FlightStatus  `json:"status"`
	DepartureAt   time.Time     `json:"departureAt"`
	DepartureICAO string        `json:"departureICAO"`
	ArrivalICAO   string        `json:"arrivalICAO"`
	AlternateICAO string        `json:"alternateICAO"`
	Duration      time.Duration `json:"duration"`
}

// Compile-time check that *Flight satisfies the ownership capability.
var _ Resource = (*Flight)(nil)

// ResourceID implements Resource.
func (f *Flight) ResourceID() uuid.UUID { return f.ID }

// SetResourceID implements Resource.
func (f *Flight) SetResourceID(id uuid.UUID) { f.ID = id }

// OwnerID implements Resource.
func (f *Flight) OwnerID() uuid.UUID { return f.UserID }

// SetOwnerID implements Resource.
func (f *Flight) SetOwnerID(id uuid.UUID) { f.UserID = id }

// Validate checks the flight has the fields persistence requires.
func (f *Flight) Validate() error {
	if f.AircraftID == uuid.Nil {
		return NewValidationError("aircraftId", "cannot be empty", ErrValidation)
	}
	if !f.Status.IsValid() {
		return NewValidationError("status", "is not a valid flight status", ErrValidation)
	}
	if f.DepartureICAO == "" {
		return NewValidationError("departureICAO", "cannot be empty", ErrValidation)
	}
	if f.ArrivalICAO == "" {
		return NewValidationError("arrivalICAO", "cannot be empty", ErrValidation)
	}
	return nil
}
