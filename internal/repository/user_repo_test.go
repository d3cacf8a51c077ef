package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice@example.com", "Alice", "hash", model.RoleUser).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	user := &model.User{Email: "alice@example.com", Name: "Alice", PasswordHash: "hash", Role: model.RoleUser}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &model.User{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, "users_email_key", ConstraintName(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(42).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), 42)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_at"}).
			AddRow(1, "alice@example.com", "Alice", "hash", model.RoleAdmin, now))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserRepository_Update_Partial(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()
	email := "new@example.com"

	mock.ExpectQuery("UPDATE users SET email = COALESCE").
		WithArgs(&email, (*string)(nil), 1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_at"}).
			AddRow(1, email, "Alice", "hash", model.RoleUser, now))

	user, err := repo.Update(context.Background(), 1, model.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("DELETE FROM users").
		WithArgs(9).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "created_at"}).
			AddRow(1, "a@example.com", "A", "h1", model.RoleUser, now).
			AddRow(2, "b@example.com", "B", "h2", model.RoleAdmin, now))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b@example.com", users[1].Email)
}
