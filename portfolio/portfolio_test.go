package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hodlstack/stacker/ledger"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEmptyLog(t *testing.T) {
	t.Parallel()

	stats := Compute(nil, 30000)

	assert.InDelta(t, 0, stats.TotalBTC, 1e-9)
	assert.InDelta(t, 0, stats.AverageCost, 1e-9)
	assert.InDelta(t, 0, stats.CurrentValue, 1e-9)
	assert.InDelta(t, 0, stats.UnrealizedPL, 1e-9)
}

func TestComputeOpenPosition(t *testing.T) {
	t.Parallel()

	txs := []ledger.Transaction{
		{ID: "b1", Type: ledger.Buy, Date: day(2023, 1, 1), Amount: 0.5, Price: 20000},
		{ID: "b2", Type: ledger.Buy, Date: day(2023, 2, 1), Amount: 0.5, Price: 30000},
	}

	stats := Compute(txs, 40000)

	assert.InDelta(t, 1.0, stats.TotalBTC, 1e-9)
	assert.InDelta(t, 25000, stats.AverageCost, 1e-9)
	assert.InDelta(t, 25000, stats.TotalInvestment, 1e-9)
	assert.InDelta(t, 40000, stats.CurrentValue, 1e-9)
	assert.InDelta(t, 15000, stats.UnrealizedPL, 1e-9)
	assert.InDelta(t, 0, stats.RealizedPL, 1e-9)
}

func TestComputeAfterPartialSale(t *testing.T) {
	t.Parallel()

	txs := []ledger.Transaction{
		{ID: "b1", Type: ledger.Buy, Date: day(2023, 1, 1), Amount: 1.0, Price: 20000},
		{ID: "s1", Type: ledger.Sell, Date: day(2023, 6, 1), Amount: 0.4, Price: 30000, Fee: 10},
	}

	stats := Compute(txs, 35000)

	// 0.6 remains from the single lot at its buy price.
	assert.InDelta(t, 0.6, stats.TotalBTC, 1e-9)
	assert.InDelta(t, 20000, stats.AverageCost, 1e-9)
	assert.InDelta(t, 0.6*20000, stats.TotalInvestment, 1e-9)
	assert.InDelta(t, 0.6*35000, stats.CurrentValue, 1e-9)
	assert.InDelta(t, 0.6*15000, stats.UnrealizedPL, 1e-9)

	// 0.4 sold: revenue 12000, basis 8000, fee 10.
	assert.InDelta(t, 3990, stats.RealizedPL, 1e-9)
	assert.InDelta(t, 4000, stats.ShortTermGains, 1e-9)
	assert.InDelta(t, 0, stats.LongTermGains, 1e-9)
}
