// Package report renders replay results as plain-text reports suitable
// for the terminal or for saving alongside tax paperwork.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Rhymond/go-money"

	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/portfolio"
)

// USD formats a dollar figure for display.
func USD(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

// BTC formats a bitcoin quantity at full 8-decimal precision.
func BTC(v float64) string {
	return fmt.Sprintf("%.8f", v)
}

// FormatHoldingPeriod humanizes a fractional day count.
func FormatHoldingPeriod(days float64) string {
	d := int(days)
	switch {
	case days < 30:
		return fmt.Sprintf("%d days", d)
	case days < 365:
		return fmt.Sprintf("%d months, %d days", d/30, d%30)
	default:
		years := d / 365
		months := (d % 365) / 30
		s := fmt.Sprintf("%d %s", years, plural(years, "year"))
		if months > 0 {
			s += fmt.Sprintf(", %d %s", months, plural(months, "month"))
		}
		return s
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func term(longTerm bool) string {
	if longTerm {
		return "Long-term"
	}
	return "Short-term"
}

// FormatYear renders a tax-year report: a summary block followed by the
// per-lot breakdown ordered by sell date.
func FormatYear(d fifo.YearDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bitcoin FIFO Tax Report — %d\n", d.Year)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02"))

	b.WriteString("Summary\n")
	fmt.Fprintf(&b, "  Total capital gains:  %s\n", USD(d.TotalProfit))
	fmt.Fprintf(&b, "  Short-term gains:     %s\n", USD(d.ShortTermGains))
	fmt.Fprintf(&b, "  Long-term gains:      %s\n", USD(d.LongTermGains))
	fmt.Fprintf(&b, "  Total sales revenue:  %s\n", USD(d.TotalRevenue))
	fmt.Fprintf(&b, "  Total cost basis:     %s\n", USD(d.TotalCostBasis))
	fmt.Fprintf(&b, "  Total fees:           %s\n", USD(d.TotalFees))
	b.WriteString("\n")

	if len(d.Allocations) == 0 {
		b.WriteString("No capital gains in this year.\n")
		return b.String()
	}

	allocs := make([]fifo.Allocation, len(d.Allocations))
	copy(allocs, d.Allocations)
	sort.SliceStable(allocs, func(i, j int) bool {
		return allocs[i].SellDate.Before(allocs[j].SellDate)
	})

	b.WriteString("Lots\n")
	for _, a := range allocs {
		b.WriteString(formatAllocation(a))
	}

	b.WriteString("\nThis report is for informational purposes only and is not tax advice.\n")
	return b.String()
}

// FormatSale renders the per-lot breakdown of one sale. It covers both
// recorded sales and hypothetical ones from SimulateSale.
func FormatSale(d fifo.SaleDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sale: %s BTC @ %s on %s\n\n",
		BTC(d.Sale.Amount), USD(d.Sale.Price), d.Sale.Date.Format("2006-01-02"))

	fmt.Fprintf(&b, "  Total revenue:    %s\n", USD(d.TotalRevenue))
	fmt.Fprintf(&b, "  Total cost basis: %s\n", USD(d.TotalCostBasis))
	fmt.Fprintf(&b, "  Fee:              %s\n", USD(d.Fee))
	fmt.Fprintf(&b, "  Profit:           %s\n", USD(d.TotalProfit))
	fmt.Fprintf(&b, "  Short-term gains: %s\n", USD(d.ShortTermGains))
	fmt.Fprintf(&b, "  Long-term gains:  %s\n\n", USD(d.LongTermGains))

	if len(d.Allocations) == 0 {
		b.WriteString("No matching buy lots: the full proceeds count as gain.\n")
		return b.String()
	}

	b.WriteString("Lots\n")
	for _, a := range d.Allocations {
		b.WriteString(formatAllocation(a))
	}
	return b.String()
}

func formatAllocation(a fifo.Allocation) string {
	return fmt.Sprintf("  %s  %s BTC bought @ %s, sold %s @ %s: %s (%s, held %s)\n",
		a.BuyDate.Format("2006-01-02"),
		BTC(a.MatchedAmount),
		USD(a.BuyPrice),
		a.SellDate.Format("2006-01-02"),
		USD(a.SellPrice),
		USD(a.Profit),
		term(a.LongTerm),
		FormatHoldingPeriod(a.HoldingPeriodDays),
	)
}

// FormatStats renders the dashboard summary.
func FormatStats(s portfolio.Stats, currentPrice float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "BTC price:          %s\n", USD(currentPrice))
	fmt.Fprintf(&b, "Total BTC held:     %s\n", BTC(s.TotalBTC))
	fmt.Fprintf(&b, "Average cost:       %s\n", USD(s.AverageCost))
	fmt.Fprintf(&b, "Total investment:   %s\n", USD(s.TotalInvestment))
	fmt.Fprintf(&b, "Current value:      %s\n", USD(s.CurrentValue))
	fmt.Fprintf(&b, "Unrealized P/L:     %s\n", USD(s.UnrealizedPL))
	fmt.Fprintf(&b, "Realized P/L:       %s\n", USD(s.RealizedPL))
	fmt.Fprintf(&b, "Short-term gains:   %s\n", USD(s.ShortTermGains))
	fmt.Fprintf(&b, "Long-term gains:    %s\n", USD(s.LongTermGains))

	return b.String()
}
