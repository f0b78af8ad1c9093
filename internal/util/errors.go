// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrSelfTransfer       = errors.New("cannot transfer to the same user")
	ErrUserNotFound       = errors.New("user not found")
	ErrStatementNotFound  = errors.New("statement not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsError reports whether err matches the target sentinel, unwrapping as needed.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
