package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/pricefeed"
	"github.com/hodlstack/stacker/report"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <amount> [price]",
	Short: "Compute the FIFO gain of a hypothetical sale",
	Long: `Answer "if I sold this much now, what would my gain be?" without
recording anything. Omit the price to use the live spot price.

Examples:
  stacker simulate 0.5
  stacker simulate 0.5 45000 --date 2025-04-15`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSimulate,
}

var simulateDate string

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simulateDate, "date", "", "sale date YYYY-MM-DD (default today)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	var price float64
	if len(args) == 2 {
		price, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("price: %w", err)
		}
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		feed := pricefeed.NewClient(cfg.Price.BaseURL)
		price, err = feed.CurrentPrice(ctx)
		if err != nil {
			price = cfg.Price.Fallback
			fmt.Printf("price feed unavailable (%v), using fallback %s\n\n", err, report.USD(price))
		}
	}

	date := time.Now()
	if simulateDate != "" {
		date, err = time.ParseInLocation("2006-01-02", simulateDate, time.Local)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	detail, err := fifo.SimulateSale(txs, amount, price, date)
	if err != nil {
		var insufficient *fifo.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			return fmt.Errorf("you only have %s BTC available to sell", report.BTC(insufficient.Available))
		}
		return err
	}

	fmt.Print(report.FormatSale(detail))
	return nil
}
