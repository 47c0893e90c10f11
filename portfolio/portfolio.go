// Package portfolio derives current holdings and valuation from a
// full-history FIFO replay plus a caller-supplied spot price. The price
// is taken as given; fetching and fallback policy belong to the caller.
package portfolio

import (
	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/ledger"
)

// Stats is the dashboard view of a portfolio.
type Stats struct {
	TotalBTC        float64
	AverageCost     float64 // weighted average over open lots, 0 when flat
	TotalInvestment float64 // cost of the open lots
	CurrentValue    float64
	UnrealizedPL    float64
	RealizedPL      float64
	ShortTermGains  float64
	LongTermGains   float64
}

// Compute replays the log and values the remaining lots at currentPrice.
func Compute(txs []ledger.Transaction, currentPrice float64) Stats {
	sum := fifo.ReplayAll(txs)

	var totalBTC, totalInvestment float64
	for _, lot := range sum.OpenLots {
		totalBTC += lot.Remaining
		totalInvestment += lot.Remaining * lot.UnitPrice
	}

	var averageCost float64
	if totalBTC > 0 {
		averageCost = totalInvestment / totalBTC
	}

	currentValue := totalBTC * currentPrice

	return Stats{
		TotalBTC:        totalBTC,
		AverageCost:     averageCost,
		TotalInvestment: totalInvestment,
		CurrentValue:    currentValue,
		UnrealizedPL:    currentValue - totalInvestment,
		RealizedPL:      sum.RealizedProfit,
		ShortTermGains:  sum.ShortTermGains,
		LongTermGains:   sum.LongTermGains,
	}
}
