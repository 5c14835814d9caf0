package service

import "github.com/shopspring/decimal"

// Allocate splits an incoming amount between spending and savings. Amounts up to
// and including the threshold stay spendable; anything larger is swept to savings
// in full. The two parts always add up to amount exactly.
func Allocate(amount, threshold decimal.Decimal) (toSpending, toSavings decimal.Decimal) {
	if amount.LessThanOrEqual(threshold) {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}
