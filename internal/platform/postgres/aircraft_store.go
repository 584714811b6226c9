package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/store"
)

// PostgresAircraftStore implements store.ResourceStore[*domain.Aircraft]
// using a PostgreSQL database as the storage backend.
type PostgresAircraftStore struct {
	db store.DBTX
}

// NewPostgresAircraftStore creates a new PostgreSQL implementation of the
// aircraft store. It accepts a database connection (or transaction) that
// should be initialized and managed by the caller.
func NewPostgresAircraftStore(db store.DBTX) *PostgresAircraftStore {
	return &PostgresAircraftStore{
		db: db,
	}
}

// Ensure PostgresAircraftStore implements the resource store interface
var _ store.ResourceStore[*domain.Aircraft] = (*PostgresAircraftStore)(nil)

// GetByID implements store.ResourceStore.GetByID.
func (s *PostgresAircraftStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Aircraft, error) {
	query := `
		SELECT id, user_id, registration, type_icao
		FROM aircrafts
		WHERE id = $1`

	var aircraft domain.Aircraft
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&aircraft.ID,
		&aircraft.UserID,
		&aircraft.Registration,
		&aircraft.TypeICAO,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan aircraft: %w", err)
	}

	return &aircraft, nil
}

// ListByOwner implements store.ResourceStore.ListByOwner. Results are
// ordered by id so pages are stable across requests.
func (s *PostgresAircraftStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	page, pageSize int,
) ([]*domain.Aircraft, error) {
	query := `
		SELECT id, user_id, registration, type_icao
		FROM aircrafts
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * pageSize
	rows, err := s.db.QueryContext(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query aircrafts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var aircrafts []*domain.Aircraft
	for rows.Next() {
		var aircraft domain.Aircraft
		err := rows.Scan(
			&aircraft.ID,
			&aircraft.UserID,
			&aircraft.Registration,
			&aircraft.TypeICAO,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aircraft row: %w", err)
		}
		aircrafts = append(aircrafts, &aircraft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aircraft rows: %w", err)
	}

	return aircrafts, nil
}

// Create implements store.ResourceStore.Create. The id is assigned by the
// database.
func (s *PostgresAircraftStore) Create(
	ctx context.Context,
	model *domain.Aircraft,
) (uuid.UUID, error) {
	query := `
		INSERT INTO aircrafts (user_id, registration, type_icao)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, query,
		model.UserID,
		model.Registration,
		model.TypeICAO,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, store.ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("failed to insert aircraft: %w", err)
	}

	model.ID = id
	return id, nil
}

// Update implements store.ResourceStore.Update. All mutable columns are
// replaced. It returns false when no row has the model's id.
func (s *PostgresAircraftStore) Update(
	ctx context.Context,
	model *domain.Aircraft,
) (bool, error) {
	query := `
		UPDATE aircrafts
		SET registration = $1, type_icao = $2
		WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, model.Registration, model.TypeICAO, model.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update aircraft: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// DeleteByID implements store.ResourceStore.DeleteByID.
func (s *PostgresAircraftStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM aircrafts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete aircraft: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
