package service

import (
	"context"
	"strings"
	"time"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/logger"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/a2sh3r/familyledger/internal/repository"
	"github.com/a2sh3r/familyledger/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AccountService interface {
	CreateAccount(ctx context.Context, parentID string, input models.NewAccount) (*models.Account, error)
	GetAccount(ctx context.Context, parentID string, accountID int64) (*models.Account, error)
	ListAccounts(ctx context.Context, parentID string) ([]models.Account, error)
	UpdateAllowance(ctx context.Context, parentID string, accountID int64, input models.AllowanceUpdate) (*models.Account, error)
	UpdateSpendingThreshold(ctx context.Context, parentID string, accountID int64, input models.ThresholdUpdate) (*models.Account, error)
}

type accountService struct {
	repo repository.AccountRepository
	now  func() time.Time
}

func NewAccountService(repo repository.AccountRepository) AccountService {
	return &accountService{repo: repo, now: time.Now}
}

func (s *accountService) CreateAccount(ctx context.Context, parentID string, input models.NewAccount) (*models.Account, error) {
	if parentID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || input.Age <= 0 {
		return nil, apperrors.ErrMissingField
	}
	if !validAllowanceDay(input.AllowanceDay) {
		return nil, apperrors.ErrInvalidAllowanceDay
	}

	allowance, err := optionalAmount(input.WeeklyAllowance, decimal.Zero)
	if err != nil {
		return nil, err
	}
	threshold, err := optionalAmount(input.SpendingThreshold, models.DefaultSpendingThreshold)
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := &models.Account{
		ParentID:          parentID,
		Name:              name,
		Age:               input.Age,
		AddressLabel:      strings.TrimSpace(input.AddressLabel),
		SavingsBalance:    decimal.Zero,
		SpendingBalance:   decimal.Zero,
		WeeklyAllowance:   allowance,
		AllowanceDay:      input.AllowanceDay,
		SpendingThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.Log.Info("account created", zap.Int64("account_id", account.ID), zap.String("parent_id", parentID))
	return account, nil
}

// GetAccount returns the account only to its owner.
func (s *accountService) GetAccount(ctx context.Context, parentID string, accountID int64) (*models.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.OwnedBy(parentID) {
		return nil, apperrors.ErrNotAccountOwner
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, parentID string) ([]models.Account, error) {
	return s.repo.GetAccountsByParent(ctx, parentID)
}

func (s *accountService) UpdateAllowance(ctx context.Context, parentID string, accountID int64, input models.AllowanceUpdate) (*models.Account, error) {
	amount, err := utils.ParseAmount(input.WeeklyAllowance)
	if err != nil {
		return nil, err
	}

	account, err := s.GetAccount(ctx, parentID, accountID)
	if err != nil {
		return nil, err
	}

	day := account.AllowanceDay
	if input.AllowanceDay != nil {
		day = *input.AllowanceDay
	}
	if !validAllowanceDay(day) {
		return nil, apperrors.ErrInvalidAllowanceDay
	}

	return s.repo.UpdateAllowance(ctx, accountID, amount, day, s.now())
}

func (s *accountService) UpdateSpendingThreshold(ctx context.Context, parentID string, accountID int64, input models.ThresholdUpdate) (*models.Account, error) {
	threshold, err := utils.ParseAmount(input.SpendingThreshold)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetAccount(ctx, parentID, accountID); err != nil {
		return nil, err
	}

	return s.repo.UpdateSpendingThreshold(ctx, accountID, threshold, s.now())
}

func validAllowanceDay(day int) bool {
	return day >= models.MinAllowanceDay && day <= models.MaxAllowanceDay
}

func optionalAmount(s string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return utils.ParseAmount(s)
}
