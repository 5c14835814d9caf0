package service

import (
	"context"
	"errors"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/repository"
	"go.uber.org/zap"
)

const allowanceDescription = "Weekly allowance"

// AllowanceScheduler credits each account's weekly allowance on its allowance day.
// Credits are tagged with the ISO week in the configured location and the store keeps
// one per account and week, so repeated ticks, extra scheduler instances and a moved
// allowance day never pay twice. Allowances a parent records by hand are not counted.
type AllowanceScheduler struct {
	accounts     repository.AccountRepository
	ledgerRepo   repository.LedgerRepository
	ledger       LedgerService
	pollInterval time.Duration
	location     *time.Location
	now          func() time.Time
}

func NewAllowanceScheduler(
	accounts repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	ledger LedgerService,
	interval time.Duration,
	location *time.Location,
) *AllowanceScheduler {
	if location == nil {
		location = time.UTC
	}
	return &AllowanceScheduler{
		accounts:     accounts,
		ledgerRepo:   ledgerRepo,
		ledger:       ledger,
		pollInterval: interval,
		location:     location,
		now:          time.Now,
	}
}

func (u *AllowanceScheduler) Run(ctx context.Context) {
	u.creditDueAllowances(ctx)

	ticker := time.NewTicker(u.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.creditDueAllowances(ctx)
		}
	}
}

// creditDueAllowances returns the number of accounts credited.
func (u *AllowanceScheduler) creditDueAllowances(ctx context.Context) int {
	today := u.now().In(u.location)
	cycle := models.AllowanceCycle(today)

	accounts, err := u.accounts.GetAccountsByAllowanceDay(ctx, int(today.Weekday()))
	if err != nil {
		logger.Log.Error("failed to get accounts due for allowance", zap.Error(err))
		return 0
	}

	credited := 0
	for _, account := range accounts {
		if ctx.Err() != nil {
			return credited
		}
		if u.creditAccount(ctx, account, cycle) {
			credited++
		}
	}
	return credited
}

func (u *AllowanceScheduler) creditAccount(ctx context.Context, account models.Account, cycle string) bool {
	done, err := u.ledgerRepo.AllowanceCredited(ctx, account.ID, cycle)
	if err != nil {
		logger.Log.Error("failed to check allowance cycle",
			zap.Int64("account_id", account.ID), zap.String("cycle", cycle), zap.Error(err))
		return false
	}
	if done {
		return false
	}

	_, err = u.ledger.CreditAllowance(ctx, account.ID, account.WeeklyAllowance, cycle)
	switch {
	case err == nil:
		return true
	case errors.Is(err, apperrors.ErrAllowanceCredited):
		logger.Log.Debug("allowance already credited",
			zap.Int64("account_id", account.ID), zap.String("cycle", cycle))
	default:
		logger.Log.Warn("failed to credit allowance",
			zap.Int64("account_id", account.ID),
			zap.String("amount", account.WeeklyAllowance.String()),
			zap.String("cycle", cycle),
			zap.Error(err))
	}
	return false
}
