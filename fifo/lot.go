package fifo

import (
	"math"
	"time"

	"github.com/hodlstack/stacker/ledger"
)

// Epsilon is the remainder below which a lot counts as fully consumed.
// It matches the 8-decimal BTC precision and is what guarantees the
// drain loop terminates under accumulated floating-point error. Every
// replay driver must use this constant, never a local copy.
const Epsilon = 1e-8

// LongTermDays is the inclusive holding-period boundary: exactly 365.0
// days is already long-term.
const LongTermDays = 365.0

// Lot is the unconsumed remainder of one buy during a replay pass. Lots
// are transient: rebuilt from the transaction log on every query, never
// persisted.
type Lot struct {
	SourceID  string
	Date      time.Time
	UnitPrice float64
	Original  float64
	Remaining float64
}

// Allocation records one buy-lot-to-sell match.
type Allocation struct {
	BuyDate           time.Time
	BuyPrice          float64
	MatchedAmount     float64
	CostBasis         float64
	SellDate          time.Time
	SellPrice         float64
	Revenue           float64
	HoldingPeriodDays float64
	LongTerm          bool
	Profit            float64
}

// queue is the FIFO lot queue: buys push to the tail, sells drain from
// the head.
type queue struct {
	lots []Lot
}

func (q *queue) push(tx ledger.Transaction) {
	q.lots = append(q.lots, Lot{
		SourceID:  tx.ID,
		Date:      tx.Date,
		UnitPrice: tx.Price,
		Original:  tx.Amount,
		Remaining: tx.Amount,
	})
}

func (q *queue) empty() bool {
	return len(q.lots) == 0
}

// consume drains amount head-first, calling visit once per matched
// portion. A lot whose remainder falls to Epsilon or below is popped.
// Returns the unmatched remainder (non-zero only when the queue ran
// dry, the degenerate oversell case).
func (q *queue) consume(amount float64, visit func(l *Lot, matched float64)) float64 {
	for amount > 0 && !q.empty() {
		head := &q.lots[0]
		matched := math.Min(amount, head.Remaining)

		if visit != nil {
			visit(head, matched)
		}

		head.Remaining -= matched
		amount -= matched

		if head.Remaining <= Epsilon {
			q.lots = q.lots[1:]
		}
	}
	return amount
}

func match(l *Lot, matched float64, sellDate time.Time, sellPrice float64) Allocation {
	costBasis := matched * l.UnitPrice
	revenue := matched * sellPrice
	days := sellDate.Sub(l.Date).Hours() / 24

	return Allocation{
		BuyDate:           l.Date,
		BuyPrice:          l.UnitPrice,
		MatchedAmount:     matched,
		CostBasis:         costBasis,
		SellDate:          sellDate,
		SellPrice:         sellPrice,
		Revenue:           revenue,
		HoldingPeriodDays: days,
		LongTerm:          days >= LongTermDays,
		Profit:            revenue - costBasis,
	}
}
