// Package ledger defines the transaction log and its persistence.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Type is the direction of a transaction.
type Type string

const (
	Buy  Type = "buy"
	Sell Type = "sell"
)

// ErrNotFound is returned when a transaction id does not exist in the store.
var ErrNotFound = errors.New("transaction not found")

// Transaction is one recorded buy or sell. Records are immutable once
// created: the log changes only by append or remove-by-id. Profit is a
// derived field, meaningful for sells only, and is recomputed by replay
// rather than set by hand.
type Transaction struct {
	ID     string
	Type   Type
	Date   time.Time
	Amount float64 // BTC quantity
	Price  float64 // USD per BTC at transaction time
	Fee    float64 // USD
	Notes  string
	Profit float64
}

func (t Transaction) Validate() error {
	if t.Type != Buy && t.Type != Sell {
		return fmt.Errorf("type must be %q or %q", Buy, Sell)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if t.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if t.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if t.Fee < 0 {
		return fmt.Errorf("fee must not be negative")
	}
	return nil
}

// Sort orders transactions by date ascending, in place. The sort is
// stable so same-day transactions keep their insertion order, which is
// what fixes the replay order for ties.
func Sort(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
}

// Snapshot returns a sorted copy of the log. Transactions are plain
// values, so the copy is independent of the caller's slice.
func Snapshot(txs []Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	Sort(out)
	return out
}

// AvailableAt returns the net BTC balance considering only transactions
// dated on or before at.
func AvailableAt(txs []Transaction, at time.Time) float64 {
	var balance float64
	for _, tx := range txs {
		if tx.Date.After(at) {
			continue
		}
		switch tx.Type {
		case Buy:
			balance += tx.Amount
		case Sell:
			balance -= tx.Amount
		}
	}
	return balance
}

// Years returns the distinct calendar years present in the log, newest
// first. Used to offer tax-year choices.
func Years(txs []Transaction) []int {
	seen := map[int]bool{}
	for _, tx := range txs {
		seen[tx.Date.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
