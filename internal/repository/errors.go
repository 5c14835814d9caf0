package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Postgres SQLSTATE codes the ledger cares about.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNumericOutOfRange    = "22003"
)

// ClampLimit maps a caller-supplied page size onto [1, MaxListLimit], defaulting to DefaultListLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// sqlState extracts the SQLSTATE code and constraint name from a pgx or lib/pq error.
func sqlState(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// classifyPgError turns driver errors into ledger error kinds.
// Lock and serialization failures become apperrors.ErrConflict so callers can retry.
func classifyPgError(err error) error {
	code, constraint, ok := sqlState(err)
	if !ok {
		return err
	}

	switch code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, code)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: referenced row does not exist", apperrors.ErrNotFound)
	case codeCheckViolation:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, constraint)
	case codeNumericOutOfRange:
		return apperrors.ErrBalanceLimit
	}
	return err
}

func isUniqueViolation(err error) bool {
	_, ok := uniqueViolation(err)
	return ok
}

// uniqueViolation returns the violated constraint or index name.
func uniqueViolation(err error) (string, bool) {
	if code, constraint, ok := sqlState(err); ok && code == codeUniqueViolation {
		return constraint, true
	}
	return "", false
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}
