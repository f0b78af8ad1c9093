// internal/repository/memory/statement_mem_test.go
package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
	"finledger/internal/util"
)

func TestStatementRepositoryOrderAndIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewStatementRepository()
	userA := uuid.New()
	userB := uuid.New()

	first := domain.NewStatement(userA, domain.StatementTypeDeposit, decimal.NewFromInt(100), "first")
	second := domain.NewStatement(userB, domain.StatementTypeDeposit, decimal.NewFromInt(200), "other user")
	third := domain.NewStatement(userA, domain.StatementTypeWithdraw, decimal.NewFromInt(30), "third")

	for _, statement := range []*domain.Statement{first, second, third} {
		require.NoError(t, repo.Create(ctx, nil, statement))
	}

	statements, err := repo.ListByUser(ctx, nil, userA)
	require.NoError(t, err)
	require.Len(t, statements, 2)
	// Insertion order, oldest first; other users' entries excluded.
	assert.Equal(t, first.ID, statements[0].ID)
	assert.Equal(t, third.ID, statements[1].ID)
}

func TestStatementRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewStatementRepository()

	statement := domain.NewStatement(uuid.New(), domain.StatementTypeDeposit, decimal.NewFromInt(100), "d")
	require.NoError(t, repo.Create(ctx, nil, statement))

	found, err := repo.GetByID(ctx, nil, statement.ID)
	require.NoError(t, err)
	assert.Equal(t, statement.ID, found.ID)

	_, err = repo.GetByID(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestStatementRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStatementRepository()

	statement := domain.NewStatement(uuid.New(), domain.StatementTypeDeposit, decimal.NewFromInt(100), "d")
	require.NoError(t, repo.Create(ctx, nil, statement))

	found, err := repo.GetByID(ctx, nil, statement.ID)
	require.NoError(t, err)
	found.Description = "mutated"

	again, err := repo.GetByID(ctx, nil, statement.ID)
	require.NoError(t, err)
	assert.Equal(t, "d", again.Description)
}
