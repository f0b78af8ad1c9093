// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/util"
	"finledger/pkg/db"
)

// BalanceReport is the result of folding a user's statement history.
type BalanceReport struct {
	Balance    decimal.Decimal    `json:"balance"`
	Statements []domain.Statement `json:"statement"`
}

// LedgerService defines the interface for statement-related business logic.
type LedgerService interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*domain.Statement, error)
	Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*domain.Statement, error)
	Transfer(ctx context.Context, senderID, recipientID uuid.UUID, amount decimal.Decimal, description string) (*domain.Statement, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceReport, error)
	GetStatementOperation(ctx context.Context, userID, statementID uuid.UUID) (*domain.Statement, error)
}

// ledgerService implements the LedgerService interface.
//
// Balance sufficiency is a check-then-act sequence over an append-only
// history, so every debiting operation holds the affected users' locks from
// the balance read through the statement write. Transfers additionally wrap
// the debit and credit writes in one database transaction: a reader never
// observes one leg without the other.
type ledgerService struct {
	dbBeginner    db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor    repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo      repository.UserRepository
	statementRepo repository.StatementRepository
	beginTx       db.BeginTxFunc
	commitTx      db.CommitTxFunc
	rollbackTx    db.RollbackTxFunc

	userLocks map[uuid.UUID]*sync.Mutex // per-user lock serializing balance-check-then-write
	locksMu   sync.Mutex                // protects userLocks itself
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	statementRepo repository.StatementRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner:    dbBeginner,
		dbExecutor:    dbExecutor,
		userRepo:      userRepo,
		statementRepo: statementRepo,
		beginTx:       beginTx,
		commitTx:      commitTx,
		rollbackTx:    rollbackTx,
		userLocks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

// userLock returns the mutex for the given user, creating it on first use.
func (s *ledgerService) userLock(userID uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	if _, exists := s.userLocks[userID]; !exists {
		s.userLocks[userID] = &sync.Mutex{}
	}
	return s.userLocks[userID]
}

// lockPair acquires both users' locks in a fixed order to avoid deadlocks
// between concurrent transfers in opposite directions.
func (s *ledgerService) lockPair(a, b uuid.UUID) func() {
	first, second := s.userLock(a), s.userLock(b)
	if strings.Compare(a.String(), b.String()) > 0 {
		first, second = second, first
	}
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// resolveUser looks up a user, translating a missing row into ErrUserNotFound.
func (s *ledgerService) resolveUser(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, q, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	return user, nil
}

// balanceOf folds the user's full statement history into a signed total.
// Deposits and transfer credits add, withdrawals and transfer debits subtract.
func (s *ledgerService) balanceOf(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (decimal.Decimal, []domain.Statement, error) {
	statements, err := s.statementRepo.ListByUser(ctx, q, userID)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to list statements for user %s: %w", userID, err)
	}

	balance := decimal.Zero
	for _, statement := range statements {
		if statement.Type.Debit() {
			balance = balance.Sub(statement.Amount)
		} else {
			balance = balance.Add(statement.Amount)
		}
	}
	return balance, statements, nil
}

// Deposit records a credit on the user's statement.
func (s *ledgerService) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*domain.Statement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("deposit: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("deposit: transaction controller does not implement DBExecutor")
	}

	if _, err := s.resolveUser(ctx, txExecutor, userID); err != nil {
		return nil, err
	}

	statement := domain.NewStatement(userID, domain.StatementTypeDeposit, amount, description)
	if err := s.statementRepo.Create(ctx, txExecutor, statement); err != nil {
		return nil, fmt.Errorf("deposit: failed to create statement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("deposit: failed to commit transaction: %w", err)
	}

	return statement, nil
}

// Withdraw records a debit on the user's statement. The withdrawal is only
// persisted when the folded balance at evaluation time covers the amount.
func (s *ledgerService) Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*domain.Statement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("withdraw: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("withdraw: transaction controller does not implement DBExecutor")
	}

	if _, err := s.resolveUser(ctx, txExecutor, userID); err != nil {
		return nil, err
	}

	balance, _, err := s.balanceOf(ctx, txExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	if balance.LessThan(amount) {
		return nil, util.ErrInsufficientFunds
	}

	statement := domain.NewStatement(userID, domain.StatementTypeWithdraw, amount, description)
	if err := s.statementRepo.Create(ctx, txExecutor, statement); err != nil {
		return nil, fmt.Errorf("withdraw: failed to create statement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("withdraw: failed to commit transaction: %w", err)
	}

	return statement, nil
}

// Transfer moves amount from sender to recipient by appending a linked
// debit/credit pair inside a single transaction. The returned statement is
// the credit side, the recipient's view of the transfer, carrying the full
// requested amount.
func (s *ledgerService) Transfer(ctx context.Context, senderID, recipientID uuid.UUID, amount decimal.Decimal, description string) (*domain.Statement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}
	if senderID == recipientID {
		return nil, util.ErrSelfTransfer
	}

	unlock := s.lockPair(senderID, recipientID)
	defer unlock()

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("transfer: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("transfer: transaction controller does not implement DBExecutor")
	}

	if _, err := s.resolveUser(ctx, txExecutor, senderID); err != nil {
		return nil, err
	}
	if _, err := s.resolveUser(ctx, txExecutor, recipientID); err != nil {
		return nil, err
	}

	balance, _, err := s.balanceOf(ctx, txExecutor, senderID)
	if err != nil {
		return nil, fmt.Errorf("transfer: %w", err)
	}
	if balance.LessThan(amount) {
		return nil, util.ErrInsufficientFunds
	}

	debit, credit := domain.NewTransferPair(senderID, recipientID, amount, description)
	if err := s.statementRepo.Create(ctx, txExecutor, debit); err != nil {
		return nil, fmt.Errorf("transfer: failed to create debit statement: %w", err)
	}
	if err := s.statementRepo.Create(ctx, txExecutor, credit); err != nil {
		return nil, fmt.Errorf("transfer: failed to create credit statement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("transfer: failed to commit transaction: %w", err)
	}

	return credit, nil
}

// GetBalance returns the user's folded balance together with the full
// statement history, oldest first. A user with no statements gets a zero
// balance and an empty list.
func (s *ledgerService) GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceReport, error) {
	if _, err := s.resolveUser(ctx, s.dbExecutor, userID); err != nil {
		return nil, err
	}

	balance, statements, err := s.balanceOf(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &BalanceReport{
		Balance:    balance,
		Statements: statements,
	}, nil
}

// GetStatementOperation returns a single statement by ID. A statement owned
// by a different user is reported as not found, so statement IDs cannot be
// probed across accounts.
func (s *ledgerService) GetStatementOperation(ctx context.Context, userID, statementID uuid.UUID) (*domain.Statement, error) {
	if _, err := s.resolveUser(ctx, s.dbExecutor, userID); err != nil {
		return nil, err
	}

	statement, err := s.statementRepo.GetByID(ctx, s.dbExecutor, statementID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrStatementNotFound
		}
		return nil, fmt.Errorf("get statement operation: failed to get statement %s: %w", statementID, err)
	}
	if statement.UserID != userID {
		return nil, util.ErrStatementNotFound
	}

	return statement, nil
}
