// Package fifo is the FIFO ledger engine: it replays an ordered buy/sell
// log, assigns each sold unit to a historical purchase lot, and derives
// realized gains with a short/long-term split. All entry points are pure
// functions of the log they are given; the caller's slice is never
// mutated.
package fifo

import (
	"errors"
	"fmt"
	"time"

	"github.com/hodlstack/stacker/ledger"
)

// ErrNotFound is returned when a sale id does not resolve to a sell
// transaction in the log.
var ErrNotFound = errors.New("sale not found")

// InsufficientBalanceError reports a proposed sale exceeding the net
// available quantity. Available carries the actual balance so callers
// can show an actionable message.
type InsufficientBalanceError struct {
	Requested float64
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested %.8f BTC, available %.8f BTC", e.Requested, e.Available)
}

// Summary is the result of a full-history replay.
type Summary struct {
	RealizedProfit float64
	ShortTermGains float64
	LongTermGains  float64
	OpenLots       []Lot
	// SaleProfits maps each sell's id to its fee-adjusted profit so the
	// caller can annotate its own copy of the log for display.
	SaleProfits map[string]float64
}

// SaleDetail describes how one sale was funded, lot by lot.
type SaleDetail struct {
	Sale           ledger.Transaction
	Allocations    []Allocation
	TotalCostBasis float64
	TotalRevenue   float64
	TotalProfit    float64
	Fee            float64
	ShortTermGains float64
	LongTermGains  float64
}

// YearDetail aggregates the allocations of every sale dated within one
// calendar year.
type YearDetail struct {
	Year           int
	Allocations    []Allocation
	TotalCostBasis float64
	TotalRevenue   float64
	TotalFees      float64
	TotalProfit    float64
	ShortTermGains float64
	LongTermGains  float64
}

// ReplayAll processes the whole log once in chronological order and
// returns cumulative realized profit, the short/long-term split, and the
// open lots left in the queue.
//
// A sell that finds the queue empty (or drains it dry) books the
// unmatched remainder at zero cost basis: its full revenue minus fee
// counts as profit. That keeps a full-history replay total even on
// malformed logs; the engine never underflows the queue.
func ReplayAll(txs []ledger.Transaction) Summary {
	log := ledger.Snapshot(txs)

	var q queue
	sum := Summary{SaleProfits: make(map[string]float64)}

	for _, tx := range log {
		switch tx.Type {
		case ledger.Buy:
			q.push(tx)

		case ledger.Sell:
			var costBasis float64
			q.consume(tx.Amount, func(l *Lot, matched float64) {
				a := match(l, matched, tx.Date, tx.Price)
				costBasis += a.CostBasis
				if a.LongTerm {
					sum.LongTermGains += a.Profit
				} else {
					sum.ShortTermGains += a.Profit
				}
			})

			profit := tx.Price*tx.Amount - costBasis - tx.Fee
			sum.SaleProfits[tx.ID] = profit
			sum.RealizedProfit += profit
		}
	}

	sum.OpenLots = q.lots
	return sum
}

// DetailForSale reconstructs the queue state as of just before the
// designated sale — every buy dated on/before it is queued, every other
// sell dated on/before it has consumed its share — and then matches the
// designated sale alone, returning its per-lot breakdown.
func DetailForSale(txs []ledger.Transaction, saleID string) (SaleDetail, error) {
	log := ledger.Snapshot(txs)

	var sale *ledger.Transaction
	for i := range log {
		if log[i].ID == saleID && log[i].Type == ledger.Sell {
			sale = &log[i]
			break
		}
	}
	if sale == nil {
		return SaleDetail{}, ErrNotFound
	}

	var q queue
	for _, tx := range log {
		if tx.Type == ledger.Buy && !tx.Date.After(sale.Date) {
			q.push(tx)
		}
	}
	for _, tx := range log {
		if tx.Type == ledger.Sell && tx.ID != saleID && !tx.Date.After(sale.Date) {
			q.consume(tx.Amount, nil)
		}
	}

	detail := SaleDetail{Sale: *sale, Fee: sale.Fee}
	q.consume(sale.Amount, func(l *Lot, matched float64) {
		detail.record(match(l, matched, sale.Date, sale.Price))
	})
	detail.TotalProfit = detail.TotalRevenue - detail.TotalCostBasis - sale.Fee

	return detail, nil
}

// DetailForYear computes the allocations attributable to sales dated
// within the given calendar year. The replay still covers everything
// dated on/before the year's end — earlier sells must consume their lots
// for availability to reflect true history — but only in-year sales are
// recorded. A zero year, or a log with nothing before the year's end,
// yields an empty result.
func DetailForYear(txs []ledger.Transaction, year int) YearDetail {
	detail := YearDetail{Year: year}
	if year == 0 || len(txs) == 0 {
		return detail
	}

	end := time.Date(year, 12, 31, 23, 59, 59, 999_000_000, time.Local)
	log := ledger.Snapshot(txs)

	var q queue
	for _, tx := range log {
		if tx.Type == ledger.Buy && !tx.Date.After(end) {
			q.push(tx)
		}
	}

	for _, tx := range log {
		if tx.Type != ledger.Sell || tx.Date.After(end) {
			continue
		}
		if q.empty() {
			continue
		}

		inYear := tx.Date.Year() == year

		sellDate, sellPrice := tx.Date, tx.Price
		q.consume(tx.Amount, func(l *Lot, matched float64) {
			if !inYear {
				return
			}
			a := match(l, matched, sellDate, sellPrice)
			detail.Allocations = append(detail.Allocations, a)
			detail.TotalCostBasis += a.CostBasis
			detail.TotalRevenue += a.Revenue
			if a.LongTerm {
				detail.LongTermGains += a.Profit
			} else {
				detail.ShortTermGains += a.Profit
			}
		})

		if inYear {
			detail.TotalFees += tx.Fee
		}
	}

	detail.TotalProfit = detail.TotalRevenue - detail.TotalCostBasis - detail.TotalFees
	return detail
}

// SimulateSale answers what the FIFO gain would be for a sale of amount
// BTC at price on date, without touching the log. It requires the net
// available balance (all buys minus all sells) to cover the amount.
//
// Unlike the other drivers the queue is seeded from buy transactions
// only; prior sells are accounted for by the net-balance precondition
// rather than replayed, so lots already spent by recorded sales can
// still appear in the hypothetical breakdown.
func SimulateSale(txs []ledger.Transaction, amount, price float64, date time.Time) (SaleDetail, error) {
	var bought, sold float64
	for _, tx := range txs {
		switch tx.Type {
		case ledger.Buy:
			bought += tx.Amount
		case ledger.Sell:
			sold += tx.Amount
		}
	}
	available := bought - sold
	if available < amount {
		return SaleDetail{}, &InsufficientBalanceError{Requested: amount, Available: available}
	}

	log := ledger.Snapshot(txs)
	var q queue
	for _, tx := range log {
		if tx.Type == ledger.Buy {
			q.push(tx)
		}
	}

	detail := SaleDetail{
		Sale: ledger.Transaction{
			Type:   ledger.Sell,
			Date:   date,
			Amount: amount,
			Price:  price,
		},
	}
	q.consume(amount, func(l *Lot, matched float64) {
		detail.record(match(l, matched, date, price))
	})
	detail.TotalProfit = detail.TotalRevenue - detail.TotalCostBasis

	return detail, nil
}

func (d *SaleDetail) record(a Allocation) {
	d.Allocations = append(d.Allocations, a)
	d.TotalCostBasis += a.CostBasis
	d.TotalRevenue += a.Revenue
	if a.LongTerm {
		d.LongTermGains += a.Profit
	} else {
		d.ShortTermGains += a.Profit
	}
}
