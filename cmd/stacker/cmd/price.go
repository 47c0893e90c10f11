package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/pricefeed"
	"github.com/hodlstack/stacker/report"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show the current (or historical) BTC price",
	Long: `Fetch the BTC/USD price from the feed.

Examples:
  stacker price
  stacker price --date 2023-06-01`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

var priceDate string

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().StringVar(&priceDate, "date", "", "historical date YYYY-MM-DD")
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	feed := pricefeed.NewClient(cfg.Price.BaseURL)

	if priceDate != "" {
		date, err := time.ParseInLocation("2006-01-02", priceDate, time.Local)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		price, err := feed.HistoricalPrice(ctx, date)
		if err != nil {
			return fmt.Errorf("historical price: %w", err)
		}
		fmt.Printf("BTC on %s: %s\n", date.Format("2006-01-02"), report.USD(price))
		return nil
	}

	price, err := feed.CurrentPrice(ctx)
	if err != nil {
		return fmt.Errorf("current price: %w", err)
	}
	fmt.Printf("BTC: %s\n", report.USD(price))
	return nil
}
