package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/serafaleo/wingman/internal/domain"
	"github.com/serafaleo/wingman/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresUserStore(db), mock
}

func TestUserStoreCreate(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("pilot@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	user := &domain.User{Email: "pilot@example.com", HashedPassword: "hash"}
	err := userStore.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreCreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("pilot@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	err := userStore.Create(context.Background(), &domain.User{
		Email:          "pilot@example.com",
		HashedPassword: "hash",
	})
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreGetByEmail(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)
	id := uuid.New()
	token := "refresh-token"
	expiry := time.Now().UTC().Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "email", "hashed_password", "refresh_token", "refresh_token_expires_at",
	}).AddRow(id, "pilot@example.com", "hash", token, expiry)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, hashed_password")).
		WithArgs("pilot@example.com").
		WillReturnRows(rows)

	user, err := userStore.GetByEmail(context.Background(), "pilot@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, token, *user.RefreshToken)
	require.NotNil(t, user.RefreshTokenExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreGetByEmailNotFound(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, hashed_password")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "hashed_password", "refresh_token", "refresh_token_expires_at",
		}))

	_, err := userStore.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreGetByIDNullRefreshFields(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "email", "hashed_password", "refresh_token", "refresh_token_expires_at",
	}).AddRow(id, "pilot@example.com", "hash", nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, hashed_password")).
		WithArgs(id).
		WillReturnRows(rows)

	user, err := userStore.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, user.RefreshToken)
	assert.Nil(t, user.RefreshTokenExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreUpdateRefreshToken(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)
	id := uuid.New()
	token := "new-token"
	expiry := time.Now().UTC().Add(7 * 24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(&token, &expiry, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := userStore.UpdateRefreshToken(context.Background(), &domain.User{
		ID:                    id,
		RefreshToken:          &token,
		RefreshTokenExpiresAt: &expiry,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreClearRefreshToken(t *testing.T) {
	t.Parallel()

	userStore, mock := newMockDB(t)
	id := uuid.New()

	// Nil pointers travel to the database as NULL, clearing the session.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(nil, nil, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := userStore.UpdateRefreshToken(context.Background(), &domain.User{ID: id})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
