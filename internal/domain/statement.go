// internal/domain/statement.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// StatementType defines the kind of a ledger operation.
type StatementType string

const (
	StatementTypeDeposit        StatementType = "deposit"
	StatementTypeWithdraw       StatementType = "withdraw"
	StatementTypeTransferDebit  StatementType = "transfer_debit"
	StatementTypeTransferCredit StatementType = "transfer_credit"
)

// Debit reports whether the type subtracts from the owner's balance.
func (t StatementType) Debit() bool {
	return t == StatementTypeWithdraw || t == StatementTypeTransferDebit
}

// Statement represents one immutable ledger entry. Entries are append-only:
// a statement is created exactly once and never updated or deleted, and a
// user's balance is always derived by folding over their statements.
type Statement struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	UserID         uuid.UUID       `db:"user_id" json:"user_id"`                           // Account whose balance the entry affects
	Type           StatementType   `db:"type" json:"type"`                                 // deposit, withdraw, transfer_debit, transfer_credit
	Amount         decimal.Decimal `db:"amount" json:"amount"`                             // Always positive, NUMERIC(20, 4) in DB
	Description    string          `db:"description" json:"description"`                   // Free text
	CounterpartyID *uuid.UUID      `db:"counterparty_id" json:"counterparty_id,omitempty"` // Other side of a transfer, nil otherwise
	TransferID     *uuid.UUID      `db:"transfer_id" json:"transfer_id,omitempty"`         // Shared by the debit/credit pair of one transfer
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// NewStatement creates a deposit or withdraw entry.
func NewStatement(userID uuid.UUID, sType StatementType, amount decimal.Decimal, description string) *Statement {
	return &Statement{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        sType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewTransferPair creates the linked debit and credit entries for a transfer
// of amount from sender to recipient. Both entries carry the same amount,
// description and transfer ID, with reciprocal counterparties.
func NewTransferPair(senderID, recipientID uuid.UUID, amount decimal.Decimal, description string) (debit, credit *Statement) {
	transferID := uuid.New()
	now := time.Now().UTC()

	debit = &Statement{
		ID:             uuid.New(),
		UserID:         senderID,
		Type:           StatementTypeTransferDebit,
		Amount:         amount,
		Description:    description,
		CounterpartyID: &recipientID,
		TransferID:     &transferID,
		CreatedAt:      now,
	}
	credit = &Statement{
		ID:             uuid.New(),
		UserID:         recipientID,
		Type:           StatementTypeTransferCredit,
		Amount:         amount,
		Description:    description,
		CounterpartyID: &senderID,
		TransferID:     &transferID,
		CreatedAt:      now,
	}
	return debit, credit
}
