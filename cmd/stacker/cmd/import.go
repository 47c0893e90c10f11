package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/ledger"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import transactions from a CSV export or .xz backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	var txs []ledger.Transaction
	var err error
	if strings.HasSuffix(path, ".xz") {
		txs, err = ledger.ImportArchive(path)
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		txs, err = ledger.ImportCSV(f)
	}
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, tx := range txs {
		if err := store.Add(tx); err != nil {
			return fmt.Errorf("add %s: %w", tx.ID, err)
		}
	}

	all, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	sum := fifo.ReplayAll(all)
	if err := store.UpdateProfits(sum.SaleProfits); err != nil {
		return fmt.Errorf("update profits: %w", err)
	}

	fmt.Printf("✓ Imported %d transactions from %s\n", len(txs), path)
	return nil
}
