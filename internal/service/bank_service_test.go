package service_test

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/YashBubna/minibank/internal/domain"
	"github.com/YashBubna/minibank/internal/journal"
	"github.com/YashBubna/minibank/internal/ledger"
	"github.com/YashBubna/minibank/internal/logger"
	"github.com/YashBubna/minibank/internal/service"
	"github.com/shopspring/decimal"
)

func newBank(t *testing.T) *service.BankService {
	t.Helper()
	return service.NewBankService(ledger.NewRegistry(), journal.New(), logger.NewWithWriter(io.Discard))
}

func TestBankingFlow(t *testing.T) {
	bank := newBank(t)

	dob, _ := time.Parse("2006-01-02", "1990-05-10")
	customer, err := bank.RegisterCustomer("Ravi Kumar", "ravi@example.com", "9876543210", dob)
	if err != nil {
		t.Fatalf("RegisterCustomer returned error: %v", err)
	}
	if customer.ID == "" {
		t.Error("Expected a non-empty customer ID")
	}

	savingsNo, err := bank.CreateAccount(domain.Savings, decimal.NewFromInt(5000))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	currentNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(2000))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	if err := bank.Deposit(savingsNo, decimal.NewFromInt(1000)); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if err := bank.Withdraw(savingsNo, decimal.NewFromInt(800)); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}
	if err := bank.Transfer(savingsNo, currentNo, decimal.NewFromInt(500)); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}

	savings, err := bank.AccountDetails(savingsNo)
	if err != nil {
		t.Fatalf("AccountDetails returned error: %v", err)
	}
	if !savings.Balance.Equal(decimal.NewFromInt(4700)) {
		t.Errorf("Expected savings balance 4700, got %s", savings.Balance)
	}
	if !savings.MinimumBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected savings minimum balance 1000, got %s", savings.MinimumBalance)
	}
	if !savings.Interest.Equal(decimal.NewFromFloat(211.5)) {
		t.Errorf("Expected savings interest 211.5, got %s", savings.Interest)
	}

	current, err := bank.AccountDetails(currentNo)
	if err != nil {
		t.Fatalf("AccountDetails returned error: %v", err)
	}
	if !current.Balance.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("Expected current balance 2500, got %s", current.Balance)
	}

	history, err := bank.TransactionHistory(savingsNo)
	if err != nil {
		t.Fatalf("TransactionHistory returned error: %v", err)
	}
	wantTypes := []domain.TransactionType{domain.Deposit, domain.Withdrawal, domain.TransferOut}
	if len(history) != len(wantTypes) {
		t.Fatalf("Expected %d records, got %d", len(wantTypes), len(history))
	}
	for i, want := range wantTypes {
		if history[i].Type != want {
			t.Errorf("Expected record %d to be %s, got %s", i, want, history[i].Type)
		}
	}
}

func TestTransferJournalsBothLegs(t *testing.T) {
	bank := newBank(t)

	fromNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	toNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(0))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	if err := bank.Transfer(fromNo, toNo, decimal.NewFromInt(250)); err != nil {
		t.Fatalf("Transfer returned error: %v", err)
	}

	fromHistory, _ := bank.TransactionHistory(fromNo)
	if len(fromHistory) != 1 || fromHistory[0].Type != domain.TransferOut {
		t.Errorf("Expected one TransferOut record on the source, got %v", fromHistory)
	}
	toHistory, _ := bank.TransactionHistory(toNo)
	if len(toHistory) != 1 || toHistory[0].Type != domain.TransferIn {
		t.Errorf("Expected one TransferIn record on the destination, got %v", toHistory)
	}
	if !fromHistory[0].Amount.Equal(toHistory[0].Amount) {
		t.Errorf("Expected equal leg amounts, got %s and %s", fromHistory[0].Amount, toHistory[0].Amount)
	}
}

func TestFailedOperationsJournalNothing(t *testing.T) {
	bank := newBank(t)

	accNo, err := bank.CreateAccount(domain.Savings, decimal.NewFromInt(1500))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	otherNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(0))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	if err := bank.Withdraw(accNo, decimal.NewFromInt(1000)); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Errorf("Expected ErrInsufficientBalance, got %v", err)
	}
	if err := bank.Transfer(accNo, otherNo, decimal.NewFromInt(1000)); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Errorf("Expected ErrInsufficientBalance, got %v", err)
	}

	history, _ := bank.TransactionHistory(accNo)
	if len(history) != 0 {
		t.Errorf("Expected empty history after failed operations, got %d records", len(history))
	}
}

func TestErrorTaxonomy(t *testing.T) {
	bank := newBank(t)

	accNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	if _, err := bank.CreateAccount(domain.Savings, decimal.NewFromInt(100)); !errors.Is(err, domain.ErrInvalidInitialBalance) {
		t.Errorf("Expected ErrInvalidInitialBalance, got %v", err)
	}
	if err := bank.Deposit("no-such-account", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
	if err := bank.Deposit(accNo, decimal.Zero); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
	if err := bank.Transfer(accNo, accNo, decimal.NewFromInt(10)); !errors.Is(err, domain.ErrSameAccount) {
		t.Errorf("Expected ErrSameAccount, got %v", err)
	}
	if err := bank.Transfer(accNo, "no-such-account", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
	if _, err := bank.TransactionHistory("no-such-account"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestConcurrentTransfersThroughService(t *testing.T) {
	bank := newBank(t)

	fromNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(250))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	toNo, err := bank.CreateAccount(domain.Current, decimal.NewFromInt(0))
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	const goroutines = 5
	amount := decimal.NewFromInt(100)

	done := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			done <- bank.Transfer(fromNo, toNo, amount)
		}()
	}

	var succeeded int
	for i := 0; i < goroutines; i++ {
		if err := <-done; err == nil {
			succeeded++
		} else if !errors.Is(err, domain.ErrInsufficientBalance) {
			t.Errorf("Expected ErrInsufficientBalance, got %v", err)
		}
	}

	if succeeded != 2 {
		t.Errorf("Expected exactly 2 transfers to succeed, got %d", succeeded)
	}

	fromHistory, _ := bank.TransactionHistory(fromNo)
	toHistory, _ := bank.TransactionHistory(toNo)
	if len(fromHistory) != 2 || len(toHistory) != 2 {
		t.Errorf("Expected 2 journaled legs per account, got %d and %d", len(fromHistory), len(toHistory))
	}
}
