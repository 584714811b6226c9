package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/store"
)

// PostgresFlightStore implements store.ResourceStore[*domain.Flight] using
// a PostgreSQL database as the storage backend. Durations are stored as
// whole seconds in a BIGINT column.
type PostgresFlightStore struct {
	db store.DBTX
}

// NewPostgresFlightStore creates a new PostgreSQL implementation of the
// flight store.
func NewPostgresFlightStore(db store.DBTX) *PostgresFlightStore {
	return &PostgresFlightStore{
		db: db,
	}
}

// Ensure PostgresFlightStore implements the resource store interface
var _ store.ResourceStore[*domain.Flight] = (*PostgresFlightStore)(nil)

const flightColumns = `id, user_id, aircraft_id, status, departure_at,
	departure_icao, arrival_icao, alternate_icao, duration_seconds`

func scanFlight(scan func(dest ...any) error) (*domain.Flight, error) {
	var flight domain.Flight
	var durationSeconds int64

	err := scan(
		&flight.ID,
		&flight.UserID,
		&flight.AircraftID,
		&flight.Status,
		&flight.DepartureAt,
		&flight.DepartureICAO,
		&flight.ArrivalICAO,
		&flight.AlternateICAO,
		&durationSeconds,
	)
	if err != nil {
		return nil, err
	}

	flight.Duration = time.Duration(durationSeconds) * time.Second
	return &flight, nil
}

// GetByID implements store.ResourceStore.GetByID.
func (s *PostgresFlightStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE id = $1`

	flight, err := scanFlight(s.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan flight: %w", err)
	}

	return flight, nil
}

// ListByOwner implements store.ResourceStore.ListByOwner. Results are
// ordered by id so pages are stable across requests.
func (s *PostgresFlightStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, pageSize int,
) ([]*domain.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * pageSize
	rows, err := s.db.QueryContext(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var flights []*domain.Flight
	for rows.Next() {
		flight, err := scanFlight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flight rows: %w", err)
	}

	return flights, nil
}

// Create implements store.ResourceStore.Create. The id is assigned by the
// database.
func (s *PostgresFlightStore) Create(ctx context.Context, model *domain.Flight) (uuid.UUID, error) {
	query := `
		INSERT INTO flights (user_id, aircraft_id, status, departure_at,
			departure_icao, arrival_icao, alternate_icao, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, query,
		model.UserID,
		model.AircraftID,
		model.Status,
		model.DepartureAt,
		model.DepartureICAO,
		model.ArrivalICAO,
		model.AlternateICAO,
		int64(model.Duration/time.Second),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert flight: %w", err)
	}

	model.ID = id
	return id, nil
}

// Update implements store.ResourceStore.Update. All mutable columns are
// replaced. It returns false when no row has the model's id.
func (s *PostgresFlightStore) Update(ctx context.Context, model *domain.Flight) (bool, error) {
	query := `
		UPDATE flights
		SET aircraft_id = $1, status = $2, departure_at = $3,
			departure_icao = $4, arrival_icao = $5, alternate_icao = $6,
			duration_seconds = $7
		WHERE id = $8`

	result, err := s.db.ExecContext(ctx, query,
		model.AircraftID,
		model.Status,
		model.DepartureAt,
		model.DepartureICAO,
		model.ArrivalICAO,
		model.AlternateICAO,
		int64(model.Duration/time.Second),
		model.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update flight: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// DeleteByID implements store.ResourceStore.DeleteByID.
func (s *PostgresFlightStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete flight: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
