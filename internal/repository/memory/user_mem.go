// internal/repository/memory/user_mem.go
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/util"
)

// UserRepository is an in-memory implementation of repository.UserRepository,
// backed by a map keyed by user ID. It is safe for concurrent use and intended
// for tests. The DBExecutor argument is ignored.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]domain.User),
	}
}

// Create stores a copy of the user.
func (r *UserRepository) Create(ctx context.Context, _ repository.DBExecutor, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}

// GetByID returns a copy of the user with the given ID.
func (r *UserRepository) GetByID(ctx context.Context, _ repository.DBExecutor, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &user, nil
}

// GetByEmail returns a copy of the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, _ repository.DBExecutor, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, util.ErrNotFound
}

// Compile-time check: ensure UserRepository implements the interface.
var _ repository.UserRepository = (*UserRepository)(nil)
