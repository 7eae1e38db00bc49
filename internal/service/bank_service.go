package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/YashBubna/minibank/internal/domain"
	"github.com/YashBubna/minibank/internal/journal"
	"github.com/YashBubna/minibank/internal/ledger"
)

// BankService is the in-process API the front end consumes. It composes the
// registry, the journal and the transfer coordinator; every operation returns
// either a result or a domain error, and failed operations leave all balances
// unchanged.
type BankService struct {
	registry    *ledger.Registry
	journal     *journal.Journal
	coordinator *TransferCoordinator
	log         zerolog.Logger
}

// AccountDetails is a point-in-time snapshot of one account
type AccountDetails struct {
	Number         string             `json:"number"`
	Type           domain.AccountType `json:"type"`
	Balance        decimal.Decimal    `json:"balance"`
	MinimumBalance decimal.Decimal    `json:"minimumBalance"`
	InterestRate   decimal.Decimal    `json:"interestRate"`
	Interest       decimal.Decimal    `json:"interest"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// NewBankService creates a BankService over the given registry and journal
func NewBankService(registry *ledger.Registry, jrnl *journal.Journal, log zerolog.Logger) *BankService {
	return &BankService{
		registry:    registry,
		journal:     jrnl,
		coordinator: NewTransferCoordinator(registry, jrnl, log),
		log:         log,
	}
}

// RegisterCustomer validates and registers a new customer
func (s *BankService) RegisterCustomer(name, email, phoneNumber string, dateOfBirth time.Time) (domain.Customer, error) {
	customer, err := s.registry.RegisterCustomer(name, email, phoneNumber, dateOfBirth)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("registering customer: %w", err)
	}

	s.log.Info().Str("customerID", customer.ID).Msg("customer registered")
	return customer, nil
}

// CreateAccount opens an account of the given type and opening balance and
// returns its account number
func (s *BankService) CreateAccount(accountType domain.AccountType, initialBalance decimal.Decimal) (string, error) {
	account, err := s.registry.CreateAccount(accountType, initialBalance)
	if err != nil {
		return "", fmt.Errorf("creating account: %w", err)
	}

	s.log.Info().
		Str("accountNumber", account.Number()).
		Str("type", string(accountType)).
		Msg("account created")
	return account.Number(), nil
}

// Deposit adds amount to the given account and journals the mutation
func (s *BankService) Deposit(accountNumber string, amount decimal.Decimal) error {
	account, err := s.registry.Resolve(accountNumber)
	if err != nil {
		return err
	}
	if err := account.Deposit(amount); err != nil {
		return err
	}

	s.journal.Append(domain.NewTransaction(accountNumber, domain.Deposit, amount))
	return nil
}

// Withdraw subtracts amount from the given account and journals the
// mutation. A failed withdrawal journals nothing.
func (s *BankService) Withdraw(accountNumber string, amount decimal.Decimal) error {
	account, err := s.registry.Resolve(accountNumber)
	if err != nil {
		return err
	}
	if err := account.Withdraw(amount); err != nil {
		return err
	}

	s.journal.Append(domain.NewTransaction(accountNumber, domain.Withdrawal, amount))
	return nil
}

// Transfer atomically moves amount between two accounts
func (s *BankService) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	return s.coordinator.Transfer(fromNumber, toNumber, amount)
}

// AccountDetails returns a snapshot of the given account
func (s *BankService) AccountDetails(accountNumber string) (AccountDetails, error) {
	account, err := s.registry.Resolve(accountNumber)
	if err != nil {
		return AccountDetails{}, err
	}

	balance := account.Balance()
	return AccountDetails{
		Number:         account.Number(),
		Type:           account.Type(),
		Balance:        balance,
		MinimumBalance: account.MinimumBalance(),
		InterestRate:   account.InterestRate(),
		Interest:       balance.Mul(account.InterestRate()).Div(decimal.NewFromInt(100)),
		CreatedAt:      account.CreatedAt(),
	}, nil
}

// TransactionHistory returns the account's transactions, ascending by
// timestamp
func (s *BankService) TransactionHistory(accountNumber string) ([]domain.Transaction, error) {
	if _, err := s.registry.Resolve(accountNumber); err != nil {
		return nil, err
	}
	return s.journal.History(accountNumber), nil
}
