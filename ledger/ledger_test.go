package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionValidate(t *testing.T) {
	t.Parallel()

	valid := Transaction{ID: "t1", Type: Buy, Date: day(2023, 1, 1), Amount: 0.5, Price: 10000}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name string
		mut  func(*Transaction)
	}{
		{"bad type", func(tx *Transaction) { tx.Type = "swap" }},
		{"zero date", func(tx *Transaction) { tx.Date = time.Time{} }},
		{"zero amount", func(tx *Transaction) { tx.Amount = 0 }},
		{"negative amount", func(tx *Transaction) { tx.Amount = -1 }},
		{"zero price", func(tx *Transaction) { tx.Price = 0 }},
		{"negative fee", func(tx *Transaction) { tx.Fee = -0.01 }},
	}
	for _, tc := range cases {
		tx := valid
		tc.mut(&tx)
		assert.Error(t, tx.Validate(), tc.name)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	t.Parallel()

	d := day(2023, 5, 5)
	txs := []Transaction{
		{ID: "a", Type: Buy, Date: d, Amount: 1, Price: 1},
		{ID: "b", Type: Buy, Date: day(2023, 1, 1), Amount: 1, Price: 1},
		{ID: "c", Type: Buy, Date: d, Amount: 1, Price: 1},
	}
	Sort(txs)

	assert.Equal(t, "b", txs[0].ID)
	assert.Equal(t, "a", txs[1].ID)
	assert.Equal(t, "c", txs[2].ID)
}

func TestSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	txs := []Transaction{
		{ID: "a", Type: Buy, Date: day(2023, 5, 5), Amount: 1, Price: 1},
		{ID: "b", Type: Buy, Date: day(2023, 1, 1), Amount: 1, Price: 1},
	}
	snap := Snapshot(txs)

	assert.Equal(t, "b", snap[0].ID)
	assert.Equal(t, "a", txs[0].ID, "original slice untouched")

	snap[0].Amount = 99
	assert.InDelta(t, 1, txs[1].Amount, 1e-9)
}

func TestAvailableAt(t *testing.T) {
	t.Parallel()

	txs := []Transaction{
		{ID: "a", Type: Buy, Date: day(2023, 1, 1), Amount: 1.0, Price: 1},
		{ID: "b", Type: Sell, Date: day(2023, 3, 1), Amount: 0.4, Price: 1},
		{ID: "c", Type: Buy, Date: day(2023, 6, 1), Amount: 0.5, Price: 1},
	}

	assert.InDelta(t, 0, AvailableAt(txs, day(2022, 12, 31)), 1e-9)
	assert.InDelta(t, 1.0, AvailableAt(txs, day(2023, 1, 1)), 1e-9)
	assert.InDelta(t, 0.6, AvailableAt(txs, day(2023, 4, 1)), 1e-9)
	assert.InDelta(t, 1.1, AvailableAt(txs, day(2023, 12, 31)), 1e-9)
}

func TestYearsNewestFirst(t *testing.T) {
	t.Parallel()

	txs := []Transaction{
		{Date: day(2021, 2, 1)},
		{Date: day(2023, 5, 1)},
		{Date: day(2021, 9, 1)},
		{Date: day(2022, 1, 1)},
	}

	assert.Equal(t, []int{2023, 2022, 2021}, Years(txs))
	assert.Empty(t, Years(nil))
}
