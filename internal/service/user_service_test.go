package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/model"
	"storefront/internal/repository/repotest"
)

func seededUsers() *repotest.Users {
	return repotest.NewUsers(
		model.User{ID: 1, Email: "alice@example.com", Name: "Alice", Role: model.RoleUser},
		model.User{ID: 2, Email: "bob@example.com", Name: "Bob", Role: model.RoleAdmin},
	)
}

func strPtr(s string) *string { return &s }

func TestUserService_Update_OtherUserForbidden(t *testing.T) {
	repo := seededUsers()
	svc := NewUserService(repo)

	_, err := svc.Update(context.Background(), 1, 2, model.UpdateUserRequest{Name: strPtr("Mallory")})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, repo.Updates)
	bob, _ := repo.Snapshot(2)
	assert.Equal(t, "Bob", bob.Name)
}

func TestUserService_Update_ForbiddenBeforeNotFound(t *testing.T) {
	svc := NewUserService(seededUsers())

	_, err := svc.Update(context.Background(), 1, 404, model.UpdateUserRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserService_Update_PartialKeepsName(t *testing.T) {
	svc := NewUserService(seededUsers())

	user, err := svc.Update(context.Background(), 1, 1, model.UpdateUserRequest{Email: strPtr("alice@new.example.com")})
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	svc := NewUserService(seededUsers())

	_, err := svc.Update(context.Background(), 1, 1, model.UpdateUserRequest{Email: strPtr("bob@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Update_NoFields(t *testing.T) {
	svc := NewUserService(seededUsers())

	_, err := svc.Update(context.Background(), 1, 1, model.UpdateUserRequest{})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = svc.Update(context.Background(), 1, 1, model.UpdateUserRequest{Name: strPtr("   ")})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestUserService_Update_SelfDeletedMeanwhile(t *testing.T) {
	svc := NewUserService(repotest.NewUsers())

	_, err := svc.Update(context.Background(), 5, 5, model.UpdateUserRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	repo := seededUsers()
	svc := NewUserService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 1, 2), ErrForbidden)
	assert.Zero(t, repo.Deletes)
	assert.Equal(t, 2, repo.Len())

	require.NoError(t, svc.Delete(ctx, 1, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1, 1), ErrUserNotFound)
	assert.Equal(t, 1, repo.Len())
}

func TestUserService_Role(t *testing.T) {
	svc := NewUserService(seededUsers())

	role, err := svc.Role(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	_, err = svc.Role(context.Background(), 3)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Delete_WithOrders(t *testing.T) {
	repo := seededUsers()
	repo.DeleteErr = repotest.ForeignKeyError("orders_user_id_fkey")
	svc := NewUserService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 1), ErrUserHasOrders)
	assert.Equal(t, 2, repo.Len())
}

func TestUserService_Update_EmailNormalized(t *testing.T) {
	repo := seededUsers()
	svc := NewUserService(repo)

	user, err := svc.Update(context.Background(), 1, 1, model.UpdateUserRequest{Email: strPtr(" Alice@New.Example.com")})
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", user.Email)

	_, err = svc.Update(context.Background(), 1, 1, model.UpdateUserRequest{Email: strPtr("BOB@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
