package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the ledger core is one of these or wraps one of them.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConflict          = errors.New("concurrent update conflict")
)

var (
	ErrInvalidAmount          = fmt.Errorf("%w: amount must be a positive decimal with at most 8 fractional digits", ErrInvalidInput)
	ErrInvalidAllowanceDay    = fmt.Errorf("%w: allowance day must be between 0 and 6", ErrInvalidInput)
	ErrInvalidTransactionType = fmt.Errorf("%w: unknown transaction type", ErrInvalidInput)
	ErrMissingField           = fmt.Errorf("%w: missing required field", ErrInvalidInput)
	ErrBalanceLimit           = fmt.Errorf("%w: balance would exceed 99999999.99999999", ErrInvalidInput)

	ErrAccountNotFound = fmt.Errorf("account %w", ErrNotFound)
	ErrRequestNotFound = fmt.Errorf("withdrawal request %w", ErrNotFound)

	ErrNotAccountOwner       = fmt.Errorf("%w: account belongs to another parent", ErrUnauthorized)
	ErrRequestAlreadyDecided = fmt.Errorf("%w: withdrawal request already decided", ErrInvalidState)
	ErrAllowanceCredited     = fmt.Errorf("%w: allowance already credited for this week", ErrInvalidState)
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidHash        = errors.New("hash mismatch")
)
