package domain

import "errors"

// Domain errors returned by account and transfer operations. Callers match
// them with errors.Is; the front end maps them to user-facing messages.
var (
	// ErrInvalidAmount indicates a zero or negative amount
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientBalance indicates a withdrawal or transfer that would
	// take the balance below the account's minimum balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound indicates an unknown account number
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount indicates a transfer where source and destination are equal
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrInvalidInitialBalance indicates an opening balance below the
	// account type's minimum balance
	ErrInvalidInitialBalance = errors.New("initial balance below minimum balance")

	// ErrInvalidAccountType indicates an unknown account type
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidCustomer indicates customer details that failed validation
	ErrInvalidCustomer = errors.New("invalid email or phone number format")

	// ErrCustomerNotFound indicates an unknown customer ID
	ErrCustomerNotFound = errors.New("customer not found")
)
