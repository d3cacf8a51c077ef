package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// UserService covers profile reads and self-service mutation
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int) (*model.User, error)
	Update(ctx context.Context, actorID, targetID int, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, actorID, targetID int) error
	Role(ctx context.Context, id int) (string, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Update changes the caller's own profile. Ownership is checked before
// existence, so a foreign id yields ErrForbidden even if it does not exist.
func (s *userService) Update(ctx context.Context, actorID, targetID int, req model.UpdateUserRequest) (*model.User, error) {
	if actorID != targetID {
		return nil, ErrForbidden
	}
	if req.Email == nil && req.Name == nil {
		return nil, invalid("", "at least one of email or name is required")
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" {
			return nil, invalid("email", "email must not be empty")
		}
		req.Email = &email
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name", "name must not be empty")
		}
		req.Name = &name
	}

	user, err := s.repo.Update(ctx, targetID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes the caller's own account. Accounts with orders are kept so
// that placed orders stay intact.
func (s *userService) Delete(ctx context.Context, actorID, targetID int) error {
	if actorID != targetID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, targetID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, repository.ErrForeignKey):
			return ErrUserHasOrders
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Role returns the stored role of a user
func (s *userService) Role(ctx context.Context, id int) (string, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
