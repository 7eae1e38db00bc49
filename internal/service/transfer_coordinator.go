package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/YashBubna/minibank/internal/domain"
	"github.com/YashBubna/minibank/internal/journal"
	"github.com/YashBubna/minibank/internal/ledger"
)

// TransferCoordinator orchestrates atomic two-account transfers: it validates
// the request, resolves both accounts, delegates the locked debit-and-credit
// to the domain layer, and journals both legs of a successful transfer in one
// append. Any number of coordinators and direct deposit/withdraw callers may
// run concurrently against the same accounts.
type TransferCoordinator struct {
	registry *ledger.Registry
	journal  *journal.Journal
	log      zerolog.Logger
}

// NewTransferCoordinator creates a new TransferCoordinator
func NewTransferCoordinator(registry *ledger.Registry, jrnl *journal.Journal, log zerolog.Logger) *TransferCoordinator {
	return &TransferCoordinator{
		registry: registry,
		journal:  jrnl,
		log:      log,
	}
}

// Transfer moves amount from one account to another. Either both the debit
// and the credit are applied, or neither is; a failed transfer leaves both
// balances unchanged and journals nothing.
func (c *TransferCoordinator) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	if fromNumber == toNumber {
		return domain.ErrSameAccount
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	from, err := c.registry.Resolve(fromNumber)
	if err != nil {
		return fmt.Errorf("resolving source account: %w", err)
	}
	to, err := c.registry.Resolve(toNumber)
	if err != nil {
		return fmt.Errorf("resolving destination account: %w", err)
	}

	if err := domain.Transfer(from, to, amount); err != nil {
		return err
	}

	// Both legs go into the journal in one append, after the account locks
	// have released
	c.journal.Append(
		domain.NewTransaction(fromNumber, domain.TransferOut, amount),
		domain.NewTransaction(toNumber, domain.TransferIn, amount),
	)

	c.log.Debug().
		Str("from", fromNumber).
		Str("to", toNumber).
		Str("amount", amount.String()).
		Msg("transfer completed")

	return nil
}
