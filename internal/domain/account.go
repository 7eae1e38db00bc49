package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the type of bank account
type AccountType string

// Account types
const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
)

var (
	savingsMinimumBalance = decimal.NewFromInt(1000)
	savingsInterestRate   = decimal.NewFromFloat(4.5)

	hundred = decimal.NewFromInt(100)
)

// Valid reports whether t is a known account type
func (t AccountType) Valid() bool {
	return t == Savings || t == Current
}

// MinimumBalance returns the lowest balance the account type permits after a
// withdrawal-class operation
func (t AccountType) MinimumBalance() decimal.Decimal {
	switch t {
	case Savings:
		return savingsMinimumBalance
	default:
		return decimal.Zero
	}
}

// InterestRate returns the annual interest rate in percent
func (t AccountType) InterestRate() decimal.Decimal {
	switch t {
	case Savings:
		return savingsInterestRate
	default:
		return decimal.Zero
	}
}

// DisplayName returns a human-readable name for the account type
func (t AccountType) DisplayName() string {
	switch t {
	case Savings:
		return "Savings Account"
	case Current:
		return "Current Account"
	default:
		return string(t)
	}
}

// Account is a bank account holding a mutable balance. Each account owns its
// own lock; deposits and withdrawals hold it for the full read-check-write
// sequence, so no two mutations on the same account interleave.
type Account struct {
	number      string
	accountType AccountType
	createdAt   time.Time

	mu      sync.Mutex
	balance decimal.Decimal
}

// NewAccount creates an account with a fresh unique number and the given
// opening balance. The opening balance must already satisfy the account
// type's minimum balance.
func NewAccount(accountType AccountType, initialBalance decimal.Decimal) (*Account, error) {
	if !accountType.Valid() {
		return nil, ErrInvalidAccountType
	}
	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if initialBalance.LessThan(accountType.MinimumBalance()) {
		return nil, ErrInvalidInitialBalance
	}

	return &Account{
		number:      uuid.NewString(),
		accountType: accountType,
		createdAt:   time.Now(),
		balance:     initialBalance,
	}, nil
}

// Number returns the account's unique, immutable account number
func (a *Account) Number() string {
	return a.number
}

// Type returns the account type
func (a *Account) Type() AccountType {
	return a.accountType
}

// CreatedAt returns the account's creation time
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// MinimumBalance returns the minimum balance for the account's type
func (a *Account) MinimumBalance() decimal.Decimal {
	return a.accountType.MinimumBalance()
}

// InterestRate returns the interest rate for the account's type in percent
func (a *Account) InterestRate() decimal.Decimal {
	return a.accountType.InterestRate()
}

// Interest returns the interest accrued on the current balance
func (a *Account) Interest() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interestLocked()
}

// Deposit adds a strictly positive amount to the balance
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.creditLocked(amount)
	return nil
}

// Withdraw subtracts a strictly positive amount from the balance. It fails
// with ErrInsufficientBalance if the result would fall below the account
// type's minimum balance, in which case the balance is left unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.debitLocked(amount)
}

// creditLocked adds to the balance. Caller must hold a.mu.
func (a *Account) creditLocked(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// debitLocked checks the minimum balance and subtracts. Caller must hold a.mu.
func (a *Account) debitLocked(amount decimal.Decimal) error {
	if a.balance.Sub(amount).LessThan(a.accountType.MinimumBalance()) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// interestLocked computes balance * rate / 100. Caller must hold a.mu.
func (a *Account) interestLocked() decimal.Decimal {
	return a.balance.Mul(a.accountType.InterestRate()).Div(hundred)
}
