package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeAllowance         = "allowance"
	TransactionTypeSpending          = "spending"
	TransactionTypeSavingsDeposit    = "savings_deposit"
	TransactionTypeSavingsWithdrawal = "savings_withdrawal"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusDenied    = "denied"
)

// IsValidTransactionType reports whether t is one of the four ledger types.
func IsValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeAllowance, TransactionTypeSpending, TransactionTypeSavingsDeposit, TransactionTypeSavingsWithdrawal:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry. Amount is always positive;
// SpendingDelta and SavingsDelta are the signed effect that was applied to the account.
type Transaction struct {
	ID            int64           `json:"id" db:"id"`
	AccountID     int64           `json:"child_id" db:"child_id"`
	Type          string          `json:"type" db:"type"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	SpendingDelta decimal.Decimal `json:"spending_delta" db:"spending_delta"`
	SavingsDelta  decimal.Decimal `json:"savings_delta" db:"savings_delta"`
	Description   string          `json:"description" db:"description"`
	Status        string          `json:"status" db:"status"`
	RequestID     *int64          `json:"request_id,omitempty" db:"request_id"`

	// Set only on scheduled allowance credits, e.g. "2024-W10".
	AllowanceCycle *string   `json:"allowance_cycle,omitempty" db:"allowance_cycle"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// AllowanceCycle names the ISO week of t, e.g. "2024-W10". A scheduled allowance
// is credited at most once per account per cycle.
func AllowanceCycle(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// TransactionView is a transaction joined with the owning child's name.
type TransactionView struct {
	Transaction
	ChildName string `json:"child_name" db:"child_name"`
}

type NewTransaction struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// LedgerAudit compares stored balances with the sum of all applied transaction effects.
type LedgerAudit struct {
	AccountID       int64           `json:"child_id"`
	Transactions    int             `json:"transactions"`
	SpendingBalance decimal.Decimal `json:"spending_balance"`
	SavingsBalance  decimal.Decimal `json:"savings_balance"`
	SpendingFromLog decimal.Decimal `json:"spending_from_log"`
	SavingsFromLog  decimal.Decimal `json:"savings_from_log"`
	Consistent      bool            `json:"consistent"`
}
