// internal/repository/statement_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"finledger/internal/domain"
)

// StatementRepository defines the interface for ledger entry data operations.
// Statements are append-only: there are no update or delete methods.
type StatementRepository interface {
	// Create appends a new statement using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, statement *domain.Statement) error
	// GetByID retrieves a statement by its ID using the provided DBExecutor.
	GetByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Statement, error)
	// ListByUser retrieves all statements for a user, oldest first.
	ListByUser(ctx context.Context, q DBExecutor, userID uuid.UUID) ([]domain.Statement, error)
}
