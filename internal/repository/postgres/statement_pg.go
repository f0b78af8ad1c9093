// internal/repository/postgres/statement_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/util"
)

// StatementRepository implements repository.StatementRepository for PostgreSQL.
type StatementRepository struct {
	// Stateless; methods receive a DBExecutor directly so they run either
	// on the pool or inside a transaction.
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(db *sqlx.DB) repository.StatementRepository {
	return &StatementRepository{}
}

// Create inserts a new statement record into the database using the provided DBExecutor.
func (r *StatementRepository) Create(ctx context.Context, q repository.DBExecutor, statement *domain.Statement) error {
	query := `INSERT INTO statements (id, user_id, type, amount, description, counterparty_id, transfer_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query,
		statement.ID,
		statement.UserID,
		statement.Type,
		statement.Amount,
		statement.Description,
		statement.CounterpartyID,
		statement.TransferID,
		statement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}
	return nil
}

// GetByID retrieves a statement by its ID using the provided DBExecutor.
func (r *StatementRepository) GetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Statement, error) {
	var statement domain.Statement
	query := `SELECT id, user_id, type, amount, description, counterparty_id, transfer_id, created_at
              FROM statements WHERE id = $1`
	err := q.GetContext(ctx, &statement, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get statement by ID %s: %w", id, err)
	}
	return &statement, nil
}

// ListByUser retrieves all statements for a user, oldest first.
func (r *StatementRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]domain.Statement, error) {
	statements := []domain.Statement{}
	query := `SELECT id, user_id, type, amount, description, counterparty_id, transfer_id, created_at
              FROM statements
              WHERE user_id = $1
              ORDER BY created_at ASC, id ASC`
	err := q.SelectContext(ctx, &statements, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statements for user %s: %w", userID, err)
	}
	return statements, nil
}
