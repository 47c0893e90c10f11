package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/report"
)

var saleCmd = &cobra.Command{
	Use:   "sale <tx-id>",
	Short: "Show which buy lots funded one sale",
	Long: `Reconstruct the lot queue as of just before the given sale and show
exactly which historical purchases it consumed, with per-lot cost basis,
holding period, and short/long-term classification.`,
	Args: cobra.ExactArgs(1),
	RunE: runSale,
}

func init() {
	rootCmd.AddCommand(saleCmd)
}

func runSale(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	detail, err := fifo.DetailForSale(txs, args[0])
	if err != nil {
		if errors.Is(err, fifo.ErrNotFound) {
			return fmt.Errorf("%s is not a sell transaction in the ledger", args[0])
		}
		return err
	}

	fmt.Print(report.FormatSale(detail))
	return nil
}
