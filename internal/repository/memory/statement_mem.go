// internal/repository/memory/statement_mem.go
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/util"
)

// StatementRepository is an in-memory implementation of
// repository.StatementRepository. Statements live in an insertion-ordered
// slice plus an index map, guarded by a mutex. The DBExecutor argument is
// ignored.
type StatementRepository struct {
	mu         sync.RWMutex
	statements []domain.Statement
	byID       map[uuid.UUID]int
}

// NewStatementRepository creates an empty in-memory statement repository.
func NewStatementRepository() *StatementRepository {
	return &StatementRepository{
		statements: make([]domain.Statement, 0),
		byID:       make(map[uuid.UUID]int),
	}
}

// Create appends a copy of the statement.
func (r *StatementRepository) Create(ctx context.Context, _ repository.DBExecutor, statement *domain.Statement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[statement.ID] = len(r.statements)
	r.statements = append(r.statements, *statement)
	return nil
}

// GetByID returns a copy of the statement with the given ID.
func (r *StatementRepository) GetByID(ctx context.Context, _ repository.DBExecutor, id uuid.UUID) (*domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	statement := r.statements[idx]
	return &statement, nil
}

// ListByUser returns copies of the user's statements in insertion order.
func (r *StatementRepository) ListByUser(ctx context.Context, _ repository.DBExecutor, userID uuid.UUID) ([]domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Statement{}
	for _, statement := range r.statements {
		if statement.UserID == userID {
			result = append(result, statement)
		}
	}
	return result, nil
}

// Compile-time check: ensure StatementRepository implements the interface.
var _ repository.StatementRepository = (*StatementRepository)(nil)
