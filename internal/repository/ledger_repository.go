package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerTx is the set of writes allowed while an account is locked.
// Nothing written through it is visible to readers until the surrounding unit of work commits.
type LedgerTx interface {
	UpdateBalances(ctx context.Context, accountID int64, savings, spending decimal.Decimal, at time.Time) error
	InsertTransaction(ctx context.Context, t *models.Transaction) error
	GetWithdrawalRequestForUpdate(ctx context.Context, id int64) (*models.WithdrawalRequest, error)
	UpdateWithdrawalStatus(ctx context.Context, id int64, status string, at time.Time) error
	SumEffects(ctx context.Context, accountID int64) (spending, savings decimal.Decimal, count int, err error)
}

// LedgerFunc runs with exclusive access to one account. Returning an error discards every write.
type LedgerFunc func(tx LedgerTx, account *models.Account) error

type LedgerRepository interface {
	// WithAccountLock serialises read-check-write sequences on a single account.
	// It fails with apperrors.ErrAccountNotFound for unknown accounts and
	// apperrors.ErrConflict when the lock cannot be taken within the configured wait.
	WithAccountLock(ctx context.Context, accountID int64, fn LedgerFunc) error
	GetTransactionsByAccount(ctx context.Context, accountID int64, limit, offset int) ([]models.Transaction, error)
	GetRecentTransactionsByParent(ctx context.Context, parentID string, limit int) ([]models.TransactionView, error)
	// AllowanceCredited reports whether a scheduled allowance was already recorded for the cycle.
	AllowanceCredited(ctx context.Context, accountID int64, cycle string) (bool, error)
}

const transactionColumns = `id, child_id, type, amount, spending_delta, savings_delta, description, status, request_id, allowance_cycle, created_at`

// Unique index guarding one scheduled allowance per account and cycle.
const allowanceCycleIndex = "idx_transactions_allowance_cycle"

type ledgerRepo struct {
	db          *sql.DB
	lockTimeout time.Duration
}

func NewLedgerRepository(db *sql.DB, lockTimeout time.Duration) LedgerRepository {
	return &ledgerRepo{db: db, lockTimeout: lockTimeout}
}

func scanTransaction(row rowScanner, extra ...any) (*models.Transaction, error) {
	var (
		t         models.Transaction
		requestID sql.NullInt64
		cycle     sql.NullString
	)
	dest := []any{&t.ID, &t.AccountID, &t.Type, &t.Amount, &t.SpendingDelta, &t.SavingsDelta,
		&t.Description, &t.Status, &requestID, &cycle, &t.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if requestID.Valid {
		id := requestID.Int64
		t.RequestID = &id
	}
	if cycle.Valid {
		t.AllowanceCycle = &cycle.String
	}
	return &t, nil
}

func (r *ledgerRepo) WithAccountLock(ctx context.Context, accountID int64, fn LedgerFunc) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classifyPgError(err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Int64("account_id", accountID), zap.Error(rbErr))
			}
		}
	}()

	if r.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return classifyPgError(err)
		}
	}

	query := `SELECT ` + accountColumns + ` FROM children WHERE id=$1 FOR UPDATE`
	account, err := scanAccount(tx.QueryRowContext(ctx, query, accountID))
	if err != nil {
		return classifyPgError(err)
	}

	if err = fn(&pgLedgerTx{tx: tx}, account); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return classifyPgError(err)
	}
	return nil
}

func (r *ledgerRepo) GetTransactionsByAccount(ctx context.Context, accountID int64, limit, offset int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
			  WHERE child_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, accountID, ClampLimit(limit), clampOffset(offset))
	if err != nil {
		logger.Log.Error("failed to query transactions", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			logger.Log.Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (r *ledgerRepo) GetRecentTransactionsByParent(ctx context.Context, parentID string, limit int) ([]models.TransactionView, error) {
	query := `
		SELECT t.id, t.child_id, t.type, t.amount, t.spending_delta, t.savings_delta, t.description,
		       t.status, t.request_id, t.allowance_cycle, t.created_at, c.name
		FROM transactions t
		JOIN children c ON c.id = t.child_id
		WHERE c.parent_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, parentID, ClampLimit(limit))
	if err != nil {
		logger.Log.Error("failed to query recent transactions", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	views := make([]models.TransactionView, 0)
	for rows.Next() {
		var childName string
		t, err := scanTransaction(rows, &childName)
		if err != nil {
			logger.Log.Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		views = append(views, models.TransactionView{Transaction: *t, ChildName: childName})
	}
	return views, rows.Err()
}

func (r *ledgerRepo) AllowanceCredited(ctx context.Context, accountID int64, cycle string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE child_id=$1 AND allowance_cycle=$2)`
	if err := r.db.QueryRowContext(ctx, query, accountID, cycle).Scan(&exists); err != nil {
		return false, classifyPgError(err)
	}
	return exists, nil
}

type pgLedgerTx struct {
	tx *sql.Tx
}

func (t *pgLedgerTx) UpdateBalances(ctx context.Context, accountID int64, savings, spending decimal.Decimal, at time.Time) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE children
		SET savings_balance = $1,
		    spending_balance = $2,
		    updated_at = $3
		WHERE id = $4
	`, savings, spending, at, accountID)
	if err != nil {
		return classifyPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (t *pgLedgerTx) InsertTransaction(ctx context.Context, tr *models.Transaction) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO transactions (child_id, type, amount, spending_delta, savings_delta, description, status, request_id, allowance_cycle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, tr.AccountID, tr.Type, tr.Amount, tr.SpendingDelta, tr.SavingsDelta, tr.Description, tr.Status,
		tr.RequestID, tr.AllowanceCycle, tr.CreatedAt).Scan(&tr.ID)
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == allowanceCycleIndex {
			return apperrors.ErrAllowanceCredited
		}
		return apperrors.ErrRequestAlreadyDecided
	}
	return classifyPgError(err)
}

func (t *pgLedgerTx) GetWithdrawalRequestForUpdate(ctx context.Context, id int64) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id=$1 FOR UPDATE`
	w, err := scanWithdrawal(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classifyPgError(err)
	}
	return w, nil
}

func (t *pgLedgerTx) UpdateWithdrawalStatus(ctx context.Context, id int64, status string, at time.Time) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE withdrawal_requests SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, status, at, id, models.WithdrawalStatusPending)
	if err != nil {
		return classifyPgError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrRequestAlreadyDecided
	}
	return nil
}

func (t *pgLedgerTx) SumEffects(ctx context.Context, accountID int64) (decimal.Decimal, decimal.Decimal, int, error) {
	var (
		spending, savings decimal.Decimal
		count             int
	)
	err := t.tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(spending_delta), 0), COALESCE(SUM(savings_delta), 0), COUNT(*)
		FROM transactions WHERE child_id = $1 AND status = $2
	`, accountID, models.TransactionStatusCompleted).Scan(&spending, &savings, &count)
	if err != nil {
		return decimal.Zero, decimal.Zero, 0, err
	}
	return spending, savings, count, nil
}
