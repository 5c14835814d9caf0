package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	GetAccountsByParent(ctx context.Context, parentID string) ([]models.Account, error)
	UpdateAllowance(ctx context.Context, id int64, amount decimal.Decimal, day int, at time.Time) (*models.Account, error)
	UpdateSpendingThreshold(ctx context.Context, id int64, threshold decimal.Decimal, at time.Time) (*models.Account, error)
	GetAccountsByAllowanceDay(ctx context.Context, day int) ([]models.Account, error)
}

const accountColumns = `id, parent_id, name, age, address_label, savings_balance, spending_balance,
	weekly_allowance, allowance_day, spending_threshold, created_at, updated_at`

type accountRepo struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepo{db: db}
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.ParentID, &a.Name, &a.Age, &a.AddressLabel, &a.SavingsBalance, &a.SpendingBalance,
		&a.WeeklyAllowance, &a.AllowanceDay, &a.SpendingThreshold, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO children (parent_id, name, age, address_label, savings_balance, spending_balance,
			  weekly_allowance, allowance_day, spending_threshold, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		account.ParentID, account.Name, account.Age, account.AddressLabel, account.SavingsBalance, account.SpendingBalance,
		account.WeeklyAllowance, account.AllowanceDay, account.SpendingThreshold, account.CreatedAt, account.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		logger.Log.Error("failed to create account", zap.String("parent_id", account.ParentID), zap.Error(err))
		return classifyPgError(err)
	}
	return nil
}

func (r *accountRepo) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM children WHERE id=$1`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepo) GetAccountsByParent(ctx context.Context, parentID string) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM children WHERE parent_id=$1 ORDER BY created_at, id`
	return r.queryAccounts(ctx, query, parentID)
}

func (r *accountRepo) GetAccountsByAllowanceDay(ctx context.Context, day int) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM children
			  WHERE allowance_day=$1 AND weekly_allowance > 0 ORDER BY id`
	return r.queryAccounts(ctx, query, day)
}

func (r *accountRepo) UpdateAllowance(ctx context.Context, id int64, amount decimal.Decimal, day int, at time.Time) (*models.Account, error) {
	query := `UPDATE children SET weekly_allowance=$1, allowance_day=$2, updated_at=$3
			  WHERE id=$4 RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, amount, day, at, id))
	if err != nil {
		return nil, classifyPgError(err)
	}
	return account, nil
}

func (r *accountRepo) UpdateSpendingThreshold(ctx context.Context, id int64, threshold decimal.Decimal, at time.Time) (*models.Account, error) {
	query := `UPDATE children SET spending_threshold=$1, updated_at=$2
			  WHERE id=$3 RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, threshold, at, id))
	if err != nil {
		return nil, classifyPgError(err)
	}
	return account, nil
}

func (r *accountRepo) queryAccounts(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query accounts", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			logger.Log.Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}
