package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: codeSerializationFailure}, wantErr: apperrors.ErrConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: codeDeadlockDetected}, wantErr: apperrors.ErrConflict},
		{name: "lock timeout", err: &pgconn.PgError{Code: codeLockNotAvailable}, wantErr: apperrors.ErrConflict},
		{name: "foreign key", err: &pgconn.PgError{Code: codeForeignKeyViolation}, wantErr: apperrors.ErrNotFound},
		{name: "check constraint", err: &pgconn.PgError{Code: codeCheckViolation}, wantErr: apperrors.ErrInvalidInput},
		{name: "numeric overflow", err: fmt.Errorf("update: %w", &pgconn.PgError{Code: codeNumericOutOfRange}), wantErr: apperrors.ErrBalanceLimit},
		{name: "lib/pq lock timeout", err: &pq.Error{Code: codeLockNotAvailable}, wantErr: apperrors.ErrConflict},
		{name: "lib/pq numeric overflow", err: &pq.Error{Code: codeNumericOutOfRange}, wantErr: apperrors.ErrBalanceLimit},
		{name: "unrelated error", err: plain, wantErr: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyPgError(tt.err), tt.wantErr)
		})
	}
}

func TestUniqueViolation(t *testing.T) {
	constraint, ok := uniqueViolation(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: allowanceCycleIndex})
	assert.True(t, ok)
	assert.Equal(t, allowanceCycleIndex, constraint)

	constraint, ok = uniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: codeUniqueViolation, Constraint: "transactions_request_id_key"}))
	assert.True(t, ok)
	assert.Equal(t, "transactions_request_id_key", constraint)

	_, ok = uniqueViolation(&pgconn.PgError{Code: codeCheckViolation})
	assert.False(t, ok)
	assert.False(t, isUniqueViolation(errors.New("boom")))
}
