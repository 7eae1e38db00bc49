package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a completed balance mutation
type TransactionType string

// Transaction types
const (
	Deposit     TransactionType = "DEPOSIT"
	Withdrawal  TransactionType = "WITHDRAWAL"
	TransferOut TransactionType = "TRANSFER_OUT"
	TransferIn  TransactionType = "TRANSFER_IN"
)

// Transaction is an immutable record of one completed balance mutation.
// Transfers produce two records, one leg per account.
type Transaction struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewTransaction creates a transaction record with a fresh unique ID and the
// current time as its completion timestamp
func NewTransaction(accountNumber string, txnType TransactionType, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		Type:          txnType,
		Amount:        amount,
		Timestamp:     time.Now(),
	}
}
