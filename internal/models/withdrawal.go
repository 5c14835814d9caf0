package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusDenied   = "denied"
)

type WithdrawalRequest struct {
	ID        int64           `json:"id" db:"id"`
	AccountID int64           `json:"child_id" db:"child_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Reason    string          `json:"reason" db:"reason"`
	Status    string          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// IsPending reports whether the request still awaits a decision.
func (w *WithdrawalRequest) IsPending() bool {
	return w.Status == WithdrawalStatusPending
}

type WithdrawalRequestView struct {
	WithdrawalRequest
	ChildName string `json:"child_name" db:"child_name"`
}

type NewWithdrawalRequest struct {
	AccountID int64  `json:"child_id"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason"`
}

type WithdrawalDecision struct {
	Approved *bool `json:"approved"`
}
