package utils

import (
	"regexp"
	"strings"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept for every monetary value (satoshi precision).
const AmountScale = 8

// MaxAmount is the largest value a NUMERIC(16,8) column holds. It bounds amounts and balances.
var MaxAmount = decimal.RequireFromString("99999999.99999999")

// Up to 8 integer digits fits NUMERIC(16,8).
var amountPattern = regexp.MustCompile(`^\d{1,8}(\.\d{1,8})?$`)

// ParseAmount parses a non-negative decimal string such as "0.0015".
// Signs, exponents and more than 8 fractional digits are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return d, nil
}

// ParsePositiveAmount is ParseAmount that also rejects zero.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return d, nil
}

// HasValidScale reports whether d carries no more than AmountScale fractional digits.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

// IsValidAmount reports whether d is a positive amount representable in the ledger.
func IsValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && HasValidScale(d) && !d.GreaterThan(MaxAmount)
}

// WithinLimit reports whether a balance fits the ledger's numeric column.
func WithinLimit(d decimal.Decimal) bool {
	return !d.GreaterThan(MaxAmount)
}
