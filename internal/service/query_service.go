package service

import (
	"context"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/repository"
)

// QueryService serves read-only views of the ledger, scoped to one parent.
type QueryService interface {
	TransactionsByAccount(ctx context.Context, parentID string, accountID int64, limit, offset int) ([]models.Transaction, error)
	RecentTransactions(ctx context.Context, parentID string, limit int) ([]models.TransactionView, error)
	PendingWithdrawals(ctx context.Context, parentID string, limit int) ([]models.WithdrawalRequestView, error)
	WithdrawalsByAccount(ctx context.Context, parentID string, accountID int64, limit int) ([]models.WithdrawalRequest, error)
}

type queryService struct {
	accounts    repository.AccountRepository
	withdrawals repository.WithdrawalRepository
	ledger      repository.LedgerRepository
}

func NewQueryService(accounts repository.AccountRepository, withdrawals repository.WithdrawalRepository, ledger repository.LedgerRepository) QueryService {
	return &queryService{accounts: accounts, withdrawals: withdrawals, ledger: ledger}
}

func (s *queryService) TransactionsByAccount(ctx context.Context, parentID string, accountID int64, limit, offset int) ([]models.Transaction, error) {
	if err := s.checkOwner(ctx, parentID, accountID); err != nil {
		return nil, err
	}
	return s.ledger.GetTransactionsByAccount(ctx, accountID, limit, offset)
}

func (s *queryService) RecentTransactions(ctx context.Context, parentID string, limit int) ([]models.TransactionView, error) {
	return s.ledger.GetRecentTransactionsByParent(ctx, parentID, limit)
}

func (s *queryService) PendingWithdrawals(ctx context.Context, parentID string, limit int) ([]models.WithdrawalRequestView, error) {
	return s.withdrawals.GetPendingByParent(ctx, parentID, limit)
}

func (s *queryService) WithdrawalsByAccount(ctx context.Context, parentID string, accountID int64, limit int) ([]models.WithdrawalRequest, error) {
	if err := s.checkOwner(ctx, parentID, accountID); err != nil {
		return nil, err
	}
	return s.withdrawals.GetByAccount(ctx, accountID, limit)
}

func (s *queryService) checkOwner(ctx context.Context, parentID string, accountID int64) error {
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.OwnedBy(parentID) {
		return apperrors.ErrNotAccountOwner
	}
	return nil
}
