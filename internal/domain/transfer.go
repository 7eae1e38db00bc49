package domain

import "github.com/shopspring/decimal"

// Transfer atomically moves amount from one account to another. Both account
// locks are acquired in account-number order, so two transfers running in
// opposite directions cannot deadlock. Either both the debit and the credit
// are applied, or neither is; no other goroutine can observe a state where
// only one side changed.
func Transfer(from, to *Account, amount decimal.Decimal) error {
	if from.number == to.number {
		return ErrSameAccount
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	first, second := from, to
	if second.number < first.number {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := from.debitLocked(amount); err != nil {
		return err
	}

	// Cannot fail once the debit succeeded: deposits have no upper bound
	to.creditLocked(amount)
	return nil
}
