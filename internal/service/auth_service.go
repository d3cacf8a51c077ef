package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/utils"
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)
}

type authService struct {
	userRepo          repository.UserRepository
	jwtUtil           *utils.JWTUtil
	initialAdminEmail string
}

// NewAuthService creates a new AuthService. A registration whose email
// equals initialAdminEmail is granted the ADMIN role.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, initialAdminEmail string) AuthService {
	return &authService{
		userRepo:          userRepo,
		jwtUtil:           jwtUtil,
		initialAdminEmail: strings.TrimSpace(initialAdminEmail),
	}
}

// bcrypt only hashes the first 72 bytes and rejects longer input
const maxPasswordBytes = 72

// normalizeEmail trims and lower-cases an address; stored emails are
// always in this form
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	switch {
	case email == "":
		return nil, invalid("email", "email is required")
	case name == "":
		return nil, invalid("name", "name is required")
	case req.Password == "":
		return nil, invalid("password", "password is required")
	case len(req.Password) > maxPasswordBytes:
		return nil, invalid("password", fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleUser
	if s.initialAdminEmail != "" && strings.EqualFold(email, s.initialAdminEmail) {
		role = model.RoleAdmin
		zerolog.Ctx(ctx).Info().Str("email", email).Msg("registering initial admin")
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a signed session token
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error finding user by email: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
