// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"finledger/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create adds a new user using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetByID retrieves a user by their ID using the provided DBExecutor.
	GetByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.User, error)
	// GetByEmail retrieves a user by their email using the provided DBExecutor.
	GetByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
}
