package service

import (
	"context"
	"strings"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/notify"
	"github.com/a2sh3r/familyledger/internal/repository"
	"github.com/a2sh3r/familyledger/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WithdrawalService drives a request from pending to approved or denied.
type WithdrawalService interface {
	CreateRequest(ctx context.Context, accountID int64, amount decimal.Decimal, reason string) (*models.WithdrawalRequest, error)
	Decide(ctx context.Context, requestID int64, approved bool, parentID string) (*models.WithdrawalRequest, error)
}

type withdrawalService struct {
	accounts  repository.AccountRepository
	requests  repository.WithdrawalRepository
	ledger    repository.LedgerRepository
	publisher notify.Publisher
	retries   int
	now       func() time.Time
}

func NewWithdrawalService(
	accounts repository.AccountRepository,
	requests repository.WithdrawalRepository,
	ledger repository.LedgerRepository,
	publisher notify.Publisher,
	retries int,
) WithdrawalService {
	if publisher == nil {
		publisher = notify.NewNopPublisher()
	}
	return &withdrawalService{
		accounts:  accounts,
		requests:  requests,
		ledger:    ledger,
		publisher: publisher,
		retries:   retries,
		now:       time.Now,
	}
}

func (s *withdrawalService) CreateRequest(ctx context.Context, accountID int64, amount decimal.Decimal, reason string) (*models.WithdrawalRequest, error) {
	if !utils.IsValidAmount(amount) {
		return nil, apperrors.ErrInvalidAmount
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrMissingField
	}

	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	request := &models.WithdrawalRequest{
		AccountID: account.ID,
		Amount:    amount,
		Reason:    reason,
		Status:    models.WithdrawalStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.requests.CreateWithdrawalRequest(ctx, request); err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal requested",
		zap.Int64("account_id", account.ID),
		zap.Int64("request_id", request.ID),
		zap.String("amount", amount.String()))

	publishEvent(ctx, s.publisher, withdrawalEvent(notify.EventWithdrawalRequested, request, account.ParentID))
	return request, nil
}

func (s *withdrawalService) Decide(ctx context.Context, requestID int64, approved bool, parentID string) (*models.WithdrawalRequest, error) {
	request, err := s.requests.GetWithdrawalRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccount(ctx, request.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.OwnedBy(parentID) {
		return nil, apperrors.ErrNotAccountOwner
	}
	if !request.IsPending() {
		return nil, apperrors.ErrRequestAlreadyDecided
	}

	var (
		decided  *models.WithdrawalRequest
		recorded *models.Transaction
	)
	err = retryOnConflict(ctx, s.retries, func() error {
		decided, recorded = nil, nil
		return s.ledger.WithAccountLock(ctx, request.AccountID, func(tx repository.LedgerTx, locked *models.Account) error {
			current, err := tx.GetWithdrawalRequestForUpdate(ctx, requestID)
			if err != nil {
				return err
			}
			if !current.IsPending() {
				return apperrors.ErrRequestAlreadyDecided
			}

			now := s.now()
			status := models.WithdrawalStatusDenied
			if approved {
				t, err := s.debit(ctx, tx, locked, current, now)
				if err != nil {
					return err
				}
				recorded = t
				status = models.WithdrawalStatusApproved
			}

			if err := tx.UpdateWithdrawalStatus(ctx, current.ID, status, now); err != nil {
				return err
			}
			current.Status, current.UpdatedAt = status, now
			decided = current
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("withdrawal decided",
		zap.Int64("account_id", decided.AccountID),
		zap.Int64("request_id", decided.ID),
		zap.String("status", decided.Status))

	publishEvent(ctx, s.publisher, withdrawalEvent(notify.EventWithdrawalDecided, decided, account.ParentID))
	if recorded != nil {
		publishEvent(ctx, s.publisher, transactionEvent(recorded, account.ParentID))
	}
	return decided, nil
}

// debit takes an approved request's amount out of the spending balance and records it.
func (s *withdrawalService) debit(ctx context.Context, tx repository.LedgerTx, account *models.Account, request *models.WithdrawalRequest, now time.Time) (*models.Transaction, error) {
	if account.SpendingBalance.LessThan(request.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	err := tx.UpdateBalances(ctx, account.ID, account.SavingsBalance, account.SpendingBalance.Sub(request.Amount), now)
	if err != nil {
		return nil, err
	}

	requestID := request.ID
	t := &models.Transaction{
		AccountID:     account.ID,
		Type:          models.TransactionTypeSavingsWithdrawal,
		Amount:        request.Amount,
		SpendingDelta: request.Amount.Neg(),
		SavingsDelta:  decimal.Zero,
		Description:   "Withdrawal approved: " + request.Reason,
		Status:        models.TransactionStatusCompleted,
		RequestID:     &requestID,
		CreatedAt:     now,
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
