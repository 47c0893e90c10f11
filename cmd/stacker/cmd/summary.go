package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/portfolio"
	"github.com/hodlstack/stacker/pricefeed"
	"github.com/hodlstack/stacker/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the portfolio dashboard",
	Long: `Show held BTC, average cost, current value, and realized/unrealized
P/L. The spot price comes from the price feed; pass --price to value the
portfolio at a price of your choosing instead.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

var summaryPrice float64

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Float64Var(&summaryPrice, "price", 0, "value holdings at this USD price instead of the live feed")
}

func runSummary(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	price := summaryPrice
	if price <= 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		feed := pricefeed.NewClient(cfg.Price.BaseURL)
		price, err = feed.CurrentPrice(ctx)
		if err != nil {
			price = cfg.Price.Fallback
			fmt.Printf("price feed unavailable (%v), using fallback %s\n\n", err, report.USD(price))
		}
	}

	stats := portfolio.Compute(txs, price)
	fmt.Print(report.FormatStats(stats, price))
	return nil
}
