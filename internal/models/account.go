package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinAllowanceDay = 0
	MaxAllowanceDay = 6
)

// DefaultSpendingThreshold applies when a parent creates an account without one.
var DefaultSpendingThreshold = decimal.RequireFromString("0.001")

// Account is a child sub-account. Balances change only through the ledger.
type Account struct {
	ID                int64           `json:"id" db:"id"`
	ParentID          string          `json:"parent_id" db:"parent_id"`
	Name              string          `json:"name" db:"name"`
	Age               int             `json:"age" db:"age"`
	AddressLabel      string          `json:"address_label,omitempty" db:"address_label"`
	SavingsBalance    decimal.Decimal `json:"savings_balance" db:"savings_balance"`
	SpendingBalance   decimal.Decimal `json:"spending_balance" db:"spending_balance"`
	WeeklyAllowance   decimal.Decimal `json:"weekly_allowance" db:"weekly_allowance"`
	AllowanceDay      int             `json:"allowance_day" db:"allowance_day"`
	SpendingThreshold decimal.Decimal `json:"spending_threshold" db:"spending_threshold"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// OwnedBy reports whether parentID owns the account.
func (a *Account) OwnedBy(parentID string) bool {
	return a != nil && parentID != "" && a.ParentID == parentID
}

// NetWorth is savings plus spending.
func (a *Account) NetWorth() decimal.Decimal {
	return a.SavingsBalance.Add(a.SpendingBalance)
}

type NewAccount struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	AddressLabel      string `json:"address_label,omitempty"`
	WeeklyAllowance   string `json:"weekly_allowance,omitempty"`
	AllowanceDay      int    `json:"allowance_day"`
	SpendingThreshold string `json:"spending_threshold,omitempty"`
}

type AllowanceUpdate struct {
	WeeklyAllowance string `json:"weekly_allowance"`
	AllowanceDay    *int   `json:"allowance_day"`
}

type ThresholdUpdate struct {
	SpendingThreshold string `json:"spending_threshold"`
}
