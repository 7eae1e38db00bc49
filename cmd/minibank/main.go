package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/YashBubna/minibank/internal/domain"
	"github.com/YashBubna/minibank/internal/journal"
	"github.com/YashBubna/minibank/internal/ledger"
	"github.com/YashBubna/minibank/internal/logger"
	"github.com/YashBubna/minibank/internal/report"
	"github.com/YashBubna/minibank/internal/repository"
	"github.com/YashBubna/minibank/internal/service"
)

func main() {
	// Command-line flags
	var (
		seedFile       string
		outputFormat   string
		outputFile     string
		prettyPrint    bool
		transfers      int
		transferAmount string
	)

	flag.StringVar(&seedFile, "seed-file", "", "Path to a CSV file of bootstrap accounts (accountType,balance)")
	flag.StringVar(&outputFormat, "format", "json", "Output format: json only for now")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")
	flag.IntVar(&transfers, "transfers", 5, "Number of concurrent transfers to run in the simulation")
	flag.StringVar(&transferAmount, "transfer-amount", "100", "Amount each simulated transfer moves")

	flag.Parse()

	log := logger.New()

	amount, err := domain.ParseAmount(transferAmount)
	if err != nil {
		exitWithError(fmt.Sprintf("Invalid transfer amount: %v", err))
	}
	if transfers <= 0 {
		exitWithError("Number of transfers must be positive")
	}

	registry := ledger.NewRegistry()
	jrnl := journal.New()
	bank := service.NewBankService(registry, jrnl, log)

	// Register a demo customer
	dob := time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC)
	if _, err := bank.RegisterCustomer("Ravi Kumar", "ravi@example.com", "9876543210", dob); err != nil {
		exitWithError(fmt.Sprintf("Failed to register customer: %v", err))
	}

	// Open the demo accounts, either from the seed file or with defaults
	savingsNo, currentNo, err := openAccounts(bank, seedFile, log)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to open accounts: %v", err))
	}

	// A short flow of single-account mutations and one transfer
	if err := bank.Deposit(savingsNo, decimal.NewFromInt(1000)); err != nil {
		exitWithError(fmt.Sprintf("Deposit failed: %v", err))
	}
	if err := bank.Withdraw(savingsNo, decimal.NewFromInt(800)); err != nil {
		exitWithError(fmt.Sprintf("Withdrawal failed: %v", err))
	}
	if err := bank.Transfer(savingsNo, currentNo, decimal.NewFromInt(500)); err != nil {
		exitWithError(fmt.Sprintf("Transfer failed: %v", err))
	}

	// Run the concurrent transfer simulation
	succeeded, failed := simulateTransfers(bank, savingsNo, currentNo, amount, transfers)
	log.Info().
		Int("succeeded", succeeded).
		Int("failed", failed).
		Msg("concurrent transfers completed")

	// Build and print the savings account statement
	details, err := bank.AccountDetails(savingsNo)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to read account details: %v", err))
	}
	history, err := bank.TransactionHistory(savingsNo)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to read transaction history: %v", err))
	}

	var formatter report.OutputFormatter
	switch outputFormat {
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint)

	// Can add other formatters later: csv, txt, etc
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", outputFormat))
		return
	}

	output, err := formatter.Format(report.Statement{Account: details, History: history})
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}

	} else {
		fmt.Println(string(output))
	}
}

// openAccounts opens one savings and one current account. With a seed file
// the first savings and first current seed rows are used; otherwise the
// defaults are savings 5000 and current 2000.
func openAccounts(bank *service.BankService, seedFile string, log zerolog.Logger) (string, string, error) {
	savingsBalance := decimal.NewFromInt(5000)
	currentBalance := decimal.NewFromInt(2000)

	if seedFile != "" {
		seeds, err := repository.NewCSVSeedRepository(seedFile, log).LoadConcurrently()
		if err != nil {
			return "", "", fmt.Errorf("loading seed file: %w", err)
		}

		for _, seed := range seeds {
			switch seed.Type {
			case domain.Savings:
				savingsBalance = seed.Balance
			case domain.Current:
				currentBalance = seed.Balance
			}
		}
	}

	savingsNo, err := bank.CreateAccount(domain.Savings, savingsBalance)
	if err != nil {
		return "", "", err
	}
	currentNo, err := bank.CreateAccount(domain.Current, currentBalance)
	if err != nil {
		return "", "", err
	}
	return savingsNo, currentNo, nil
}

// simulateTransfers runs n concurrent transfers of amount from one account to
// the other and reports how many succeeded
func simulateTransfers(bank *service.BankService, fromNo, toNo string, amount decimal.Decimal, n int) (succeeded, failed int) {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := bank.Transfer(fromNo, toNo, amount)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			failed++
			if !errors.Is(err, domain.ErrInsufficientBalance) {
				fmt.Fprintf(os.Stderr, "Transfer failed: %v\n", err)
			}
		}()
	}

	wg.Wait()
	return succeeded, failed
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
