package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YashBubna/minibank/internal/domain"
)

// Registry owns every account and customer in the system. Structural changes
// (creation, lookup) are guarded by the registry's own lock, which is never
// held together with an individual account's balance lock: concurrent account
// creation never blocks balance mutations on existing accounts.
//
// Accounts are never removed, so a resolved *domain.Account stays valid for
// the registry's lifetime and account numbers are never reused.
type Registry struct {
	mu        sync.RWMutex
	accounts  map[string]*domain.Account
	customers map[string]domain.Customer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		accounts:  make(map[string]*domain.Account),
		customers: make(map[string]domain.Customer),
	}
}

// CreateAccount constructs an account of the given type and opening balance
// and inserts it. The opening balance must satisfy the account type's minimum
// balance; otherwise it fails with ErrInvalidInitialBalance.
func (r *Registry) CreateAccount(accountType domain.AccountType, initialBalance decimal.Decimal) (*domain.Account, error) {
	account, err := domain.NewAccount(accountType, initialBalance)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.Number()] = account
	return account, nil
}

// Resolve looks up an account by its number. Safe under concurrent creates.
func (r *Registry) Resolve(accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Accounts returns all registered accounts
func (r *Registry) Accounts() []*domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	return out
}

// RegisterCustomer validates and registers a new customer
func (r *Registry) RegisterCustomer(name, email, phoneNumber string, dateOfBirth time.Time) (domain.Customer, error) {
	customer, err := domain.NewCustomer(name, email, phoneNumber, dateOfBirth)
	if err != nil {
		return domain.Customer{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = customer
	return customer, nil
}

// Customer looks up a customer by ID
func (r *Registry) Customer(customerID string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[customerID]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}
