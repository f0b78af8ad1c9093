// internal/repository/postgres/statement_pg_test.go
package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
	"finledger/internal/util"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestStatementCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatementRepository(db)

	statement := domain.NewStatement(uuid.New(), domain.StatementTypeDeposit, decimal.NewFromInt(300), "Test")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO statements`)).
		WithArgs(statement.ID, statement.UserID, statement.Type, statement.Amount,
			statement.Description, nil, nil, statement.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), db, statement)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatementRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, type, amount, description, counterparty_id, transfer_id, created_at`)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	statement, err := repo.GetByID(context.Background(), db, id)

	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Nil(t, statement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatementRepository(db)
	userID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "description", "counterparty_id", "transfer_id", "created_at"}).
		AddRow(uuid.New().String(), userID.String(), "deposit", "300.0000", "seed", nil, nil, now).
		AddRow(uuid.New().String(), userID.String(), "withdraw", "100.0000", "rent", nil, nil, now.Add(time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at ASC, id ASC`)).
		WithArgs(userID).
		WillReturnRows(rows)

	statements, err := repo.ListByUser(context.Background(), db, userID)

	require.NoError(t, err)
	require.Len(t, statements, 2)
	assert.Equal(t, domain.StatementTypeDeposit, statements[0].Type)
	assert.True(t, statements[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, domain.StatementTypeWithdraw, statements[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), db, "nobody@example.com")

	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
