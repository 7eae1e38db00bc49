package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/YashBubna/minibank/internal/domain"
	"github.com/YashBubna/minibank/pkg/fileutil"
)

var seedHeaderFields = []string{"accountType", "balance"}

// SeedAccount is one bootstrap account parsed from a seed file
type SeedAccount struct {
	Type    domain.AccountType
	Balance decimal.Decimal
}

// CSVSeedRepository reads bootstrap accounts from a CSV seed file. Rows that
// fail to parse are logged and skipped so one bad row does not abort the
// whole seed.
type CSVSeedRepository struct {
	FilePath   string
	NumWorkers int
	BatchSize  int

	log zerolog.Logger
}

// NewCSVSeedRepository creates a new CSVSeedRepository
func NewCSVSeedRepository(fp string, log zerolog.Logger) *CSVSeedRepository {
	return &CSVSeedRepository{
		FilePath:   fp,
		NumWorkers: 4,    // Default to 4 workers
		BatchSize:  1000, // Default to 1000 records per batch
		log:        log,
	}
}

// Load reads and parses the seed file row by row
func (r *CSVSeedRepository) Load() ([]SeedAccount, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading seed header: %w", err)
	}

	columnMap, err := createHeaderMap(header, seedHeaderFields)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV column: %w", err)
	}

	var seeds []SeedAccount
	rowProcessorFn := func(row []string) error {
		seed, ok := r.parseRow(row, columnMap)
		if ok {
			seeds = append(seeds, seed)
		}
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("reading and processing seed rows: %w", err)
	}

	return seeds, nil
}

// LoadConcurrently parses seed rows with a pool of workers, good for large
// seed files
func (r *CSVSeedRepository) LoadConcurrently() ([]SeedAccount, error) {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading seed header: %w", err)
	}

	columnMap, err := createHeaderMap(header, seedHeaderFields)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV column: %w", err)
	}

	jobs := make(chan [][]string, r.NumWorkers)
	results := make(chan []SeedAccount, r.NumWorkers)
	errChan := make(chan error, 1)

	// Start the worker pool
	var wg sync.WaitGroup
	for i := 0; i < r.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for batch := range jobs {
				batchResults := make([]SeedAccount, 0, len(batch))
				for _, row := range batch {
					seed, ok := r.parseRow(row, columnMap)
					if ok {
						batchResults = append(batchResults, seed)
					}
				}

				if len(batchResults) > 0 {
					results <- batchResults
				}
			}
		}()
	}

	// Close results channel once all workers are done
	go func() {
		wg.Wait()
		close(results)
	}()

	// Read and distribute batches of CSV records to workers
	go func() {
		defer close(jobs)

		if err := r.readAndDistribute(reader, jobs); err != nil {
			errChan <- err
		}
	}()

	var seeds []SeedAccount
	for batch := range results {
		seeds = append(seeds, batch...)
	}

	select {
	case err := <-errChan:
		return nil, err
	default:
	}

	return seeds, nil
}

// readAndDistribute reads seed rows from the CSV and sends them to workers in
// batches
func (r *CSVSeedRepository) readAndDistribute(csvReader *csv.Reader, jobs chan<- [][]string) error {
	batch := make([][]string, 0, r.BatchSize)

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV record: %w", err)
		}

		batch = append(batch, record)

		if len(batch) >= r.BatchSize {
			jobs <- batch
			batch = make([][]string, 0, r.BatchSize)
		}
	}

	// Send any remaining records in the last batch
	if len(batch) > 0 {
		jobs <- batch
	}

	return nil
}

// parseRow parses one seed row. Invalid rows are logged and dropped.
func (r *CSVSeedRepository) parseRow(row []string, columnMap map[string]int) (SeedAccount, bool) {
	maxIndex := -1
	for _, idx := range columnMap {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	// Skip if row doesn't have enough fields
	if len(row) <= maxIndex {
		r.log.Warn().Strs("row", row).Msg("invalid seed row")
		return SeedAccount{}, false
	}

	accountType := domain.AccountType(row[columnMap["accountType"]])
	if !accountType.Valid() {
		r.log.Warn().Str("accountType", string(accountType)).Msg("invalid account type")
		return SeedAccount{}, false
	}

	balance, err := domain.ParseAmount(row[columnMap["balance"]])
	if err != nil {
		r.log.Warn().Err(err).Msg("invalid balance format")
		return SeedAccount{}, false
	}

	return SeedAccount{Type: accountType, Balance: balance}, true
}
