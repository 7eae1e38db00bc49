package journal

import (
	"sort"
	"sync"

	"github.com/YashBubna/minibank/internal/domain"
)

// entry pairs a transaction with its journal sequence number. The sequence
// gives concurrently appended records a total order and breaks ties between
// records with equal timestamps, so repeated history reads are identical.
type entry struct {
	seq uint64
	txn domain.Transaction
}

// Journal is an append-only, thread-safe log of completed balance mutations.
// It is synchronized independently of account locks: callers append after
// their account critical section has released.
type Journal struct {
	mu      sync.Mutex
	nextSeq uint64
	entries []entry
}

// New creates an empty journal
func New() *Journal {
	return &Journal{}
}

// Append records one or more completed transactions in a single critical
// section. The two legs of a transfer are appended together, so no reader
// ever observes only one leg.
func (j *Journal) Append(txns ...domain.Transaction) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, txn := range txns {
		j.entries = append(j.entries, entry{seq: j.nextSeq, txn: txn})
		j.nextSeq++
	}
}

// History returns the transactions recorded against the given account number,
// ascending by timestamp. The returned slice is a copy; it does not change
// when new records are appended later.
func (j *Journal) History(accountNumber string) []domain.Transaction {
	j.mu.Lock()
	var matched []entry
	for _, e := range j.entries {
		if e.txn.AccountNumber == accountNumber {
			matched = append(matched, e)
		}
	}
	j.mu.Unlock()

	sort.Slice(matched, func(i, k int) bool {
		if !matched[i].txn.Timestamp.Equal(matched[k].txn.Timestamp) {
			return matched[i].txn.Timestamp.Before(matched[k].txn.Timestamp)
		}
		return matched[i].seq < matched[k].seq
	})

	out := make([]domain.Transaction, len(matched))
	for i, e := range matched {
		out[i] = e.txn
	}
	return out
}

// Size returns the total number of recorded transactions
func (j *Journal) Size() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
