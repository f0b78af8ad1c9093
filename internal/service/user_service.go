// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/token"
	"finledger/internal/util"
)

// UserService defines the interface for registration and authentication.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     token.Manager
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, tokens token.Manager) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
	}
}

// Register creates a new user with a bcrypt-hashed credential. The email must
// not already be registered.
func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	_, err := s.userRepo.GetByEmail(ctx, s.dbExecutor, email)
	if err == nil {
		return nil, util.ErrEmailTaken
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(name, email, string(hash))
	if err := s.userRepo.Create(ctx, s.dbExecutor, user); err != nil {
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the credentials and returns a signed access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", fmt.Errorf("authenticate: failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("authenticate: failed to generate token: %w", err)
	}
	return accessToken, nil
}

// GetProfile returns the user record for the given ID.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, s.dbExecutor, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: failed to get user %s: %w", userID, err)
	}
	return user, nil
}
