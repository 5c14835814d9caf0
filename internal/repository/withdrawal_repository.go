package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithdrawalRequest(ctx context.Context, request *models.WithdrawalRequest) error
	GetWithdrawalRequest(ctx context.Context, id int64) (*models.WithdrawalRequest, error)
	GetPendingByParent(ctx context.Context, parentID string, limit int) ([]models.WithdrawalRequestView, error)
	GetByAccount(ctx context.Context, accountID int64, limit int) ([]models.WithdrawalRequest, error)
}

const withdrawalColumns = `id, child_id, amount, reason, status, created_at, updated_at`

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

func scanWithdrawal(row rowScanner) (*models.WithdrawalRequest, error) {
	var w models.WithdrawalRequest
	err := row.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Reason, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) CreateWithdrawalRequest(ctx context.Context, request *models.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests (child_id, amount, reason, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		request.AccountID, request.Amount, request.Reason, request.Status, request.CreatedAt, request.UpdatedAt,
	).Scan(&request.ID)
	if err != nil {
		logger.Log.Error("failed to create withdrawal request", zap.Int64("child_id", request.AccountID), zap.Error(err))
		return classifyPgError(err)
	}
	return nil
}

func (r *withdrawalRepo) GetWithdrawalRequest(ctx context.Context, id int64) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id=$1`
	return scanWithdrawal(r.db.QueryRowContext(ctx, query, id))
}

func (r *withdrawalRepo) GetPendingByParent(ctx context.Context, parentID string, limit int) ([]models.WithdrawalRequestView, error) {
	query := `
		SELECT w.id, w.child_id, w.amount, w.reason, w.status, w.created_at, w.updated_at, c.name
		FROM withdrawal_requests w
		JOIN children c ON c.id = w.child_id
		WHERE c.parent_id = $1 AND w.status = $2
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT $3
	`
	rows, err := r.db.QueryContext(ctx, query, parentID, models.WithdrawalStatusPending, ClampLimit(limit))
	if err != nil {
		logger.Log.Error("failed to query pending withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	views := make([]models.WithdrawalRequestView, 0)
	for rows.Next() {
		var v models.WithdrawalRequestView
		if err := rows.Scan(&v.ID, &v.AccountID, &v.Amount, &v.Reason, &v.Status, &v.CreatedAt, &v.UpdatedAt, &v.ChildName); err != nil {
			logger.Log.Error("failed to scan withdrawal request", zap.Error(err))
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *withdrawalRepo) GetByAccount(ctx context.Context, accountID int64, limit int) ([]models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
			  WHERE child_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, accountID, ClampLimit(limit))
	if err != nil {
		logger.Log.Error("failed to query withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	requests := make([]models.WithdrawalRequest, 0)
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *w)
	}
	return requests, rows.Err()
}
