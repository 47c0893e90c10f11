package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/fifo"
)

var rmCmd = &cobra.Command{
	Use:   "rm <tx-id>",
	Short: "Remove a transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(args[0]); err != nil {
		return fmt.Errorf("remove %s: %w", args[0], err)
	}

	// Profits of remaining sells shift when history changes.
	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	sum := fifo.ReplayAll(txs)
	if err := store.UpdateProfits(sum.SaleProfits); err != nil {
		return fmt.Errorf("update profits: %w", err)
	}

	fmt.Printf("✓ Removed %s\n", args[0])
	return nil
}
