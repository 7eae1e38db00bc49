package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// All monetary values in the system are decimal.Decimal. Balances and amounts
// are never stored or computed as floats.

// ValidateAmount checks that a transaction amount is strictly positive
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ParseAmount parses a monetary value from its exact decimal string form
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return amount, nil
}
