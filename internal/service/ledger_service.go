package service

import (
	"context"
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

// LedgerService records balance-affecting transactions.
type LedgerService interface {
	RecordTransaction(ctx context.Context, accountID int64, txType string, amount decimal.Decimal, description string) (*models.Transaction, error)
	// CreditAllowance records a scheduled allowance tagged with its weekly cycle.
	// A second credit for the same account and cycle fails with apperrors.ErrAllowanceCredited.
	CreditAllowance(ctx context.Context, accountID int64, amount decimal.Decimal, cycle string) (*models.Transaction, error)
	VerifyAccount(ctx context.Context, accountID int64) (*models.LedgerAudit, error)
}

type ledgerService struct {
	ledger    repository.LedgerRepository
	publisher notify.Publisher
	retries   int
	now       func() time.Time
}

func NewLedgerService(ledger repository.LedgerRepository, publisher notify.Publisher, retries int) LedgerService {
	if publisher == nil {
		publisher = notify.NewNopPublisher()
	}
	return &ledgerService{
		ledger:    ledger,
		publisher: publisher,
		retries:   retries,
		now:       time.Now,
	}
}

func (s *ledgerService) RecordTransaction(ctx context.Context, accountID int64, txType string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	return s.record(ctx, accountID, txType, amount, description, nil)
}

func (s *ledgerService) CreditAllowance(ctx context.Context, accountID int64, amount decimal.Decimal, cycle string) (*models.Transaction, error) {
	if cycle == "" {
		return nil, apperrors.ErrMissingField
	}
	return s.record(ctx, accountID, models.TransactionTypeAllowance, amount, allowanceDescription, &cycle)
}

func (s *ledgerService) record(ctx context.Context, accountID int64, txType string, amount decimal.Decimal, description string, cycle *string) (*models.Transaction, error) {
	if !models.IsValidTransactionType(txType) {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !utils.IsValidAmount(amount) {
		return nil, apperrors.ErrInvalidAmount
	}

	var (
		recorded *models.Transaction
		parentID string
	)
	err := retryOnConflict(ctx, s.retries, func() error {
		return s.ledger.WithAccountLock(ctx, accountID, func(tx repository.LedgerTx, account *models.Account) error {
			spendingDelta, savingsDelta, err := balanceEffect(txType, amount, account)
			if err != nil {
				return err
			}
			savings := account.SavingsBalance.Add(savingsDelta)
			spending := account.SpendingBalance.Add(spendingDelta)
			if !utils.WithinLimit(savings) || !utils.WithinLimit(spending) {
				return apperrors.ErrBalanceLimit
			}

			now := s.now()
			if err := tx.UpdateBalances(ctx, account.ID, savings, spending, now); err != nil {
				return err
			}

			t := &models.Transaction{
				AccountID:      account.ID,
				Type:           txType,
				Amount:         amount,
				SpendingDelta:  spendingDelta,
				SavingsDelta:   savingsDelta,
				Description:    description,
				Status:         models.TransactionStatusCompleted,
				AllowanceCycle: cycle,
				CreatedAt:      now,
			}
			if err := tx.InsertTransaction(ctx, t); err != nil {
				return err
			}

			recorded, parentID = t, account.ParentID
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("transaction recorded",
		zap.Int64("account_id", accountID),
		zap.Int64("transaction_id", recorded.ID),
		zap.String("type", txType),
		zap.String("amount", amount.String()))

	publishEvent(ctx, s.publisher, transactionEvent(recorded, parentID))
	return recorded, nil
}

// balanceEffect returns the signed change a transaction applies to each balance.
func balanceEffect(txType string, amount decimal.Decimal, account *models.Account) (spending, savings decimal.Decimal, err error) {
	switch txType {
	case models.TransactionTypeAllowance, models.TransactionTypeSavingsDeposit:
		spending, savings = Allocate(amount, account.SpendingThreshold)
		return spending, savings, nil
	case models.TransactionTypeSpending:
		if account.SpendingBalance.LessThan(amount) {
			return decimal.Zero, decimal.Zero, apperrors.ErrInsufficientFunds
		}
		return amount.Neg(), decimal.Zero, nil
	case models.TransactionTypeSavingsWithdrawal:
		if account.SavingsBalance.LessThan(amount) {
			return decimal.Zero, decimal.Zero, apperrors.ErrInsufficientFunds
		}
		return decimal.Zero, amount.Neg(), nil
	}
	return decimal.Zero, decimal.Zero, apperrors.ErrInvalidTransactionType
}

// VerifyAccount recomputes both balances from the completed transactions of an account.
func (s *ledgerService) VerifyAccount(ctx context.Context, accountID int64) (*models.LedgerAudit, error) {
	var audit *models.LedgerAudit
	err := retryOnConflict(ctx, s.retries, func() error {
		return s.ledger.WithAccountLock(ctx, accountID, func(tx repository.LedgerTx, account *models.Account) error {
			spending, savings, count, err := tx.SumEffects(ctx, account.ID)
			if err != nil {
				return err
			}
			audit = &models.LedgerAudit{
				AccountID:       account.ID,
				Transactions:    count,
				SpendingBalance: account.SpendingBalance,
				SavingsBalance:  account.SavingsBalance,
				SpendingFromLog: spending,
				SavingsFromLog:  savings,
				Consistent:      spending.Equal(account.SpendingBalance) && savings.Equal(account.SavingsBalance),
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if !audit.Consistent {
		logger.Log.Error("ledger drift detected",
			zap.Int64("account_id", accountID),
			zap.String("spending_balance", audit.SpendingBalance.String()),
			zap.String("spending_from_log", audit.SpendingFromLog.String()),
			zap.String("savings_balance", audit.SavingsBalance.String()),
			zap.String("savings_from_log", audit.SavingsFromLog.String()))
	}
	return audit, nil
}
