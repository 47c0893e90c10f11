package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/ledger"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the ledger to CSV (or an xz-compressed backup)",
	Long: `Write every transaction to a CSV file. Files ending in .xz are
compressed backups that import can read back directly.

Examples:
  stacker export transactions.csv
  stacker export backup-2026.csv.xz`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	path := args[0]
	if strings.HasSuffix(path, ".xz") {
		if err := ledger.ExportArchive(path, txs); err != nil {
			return fmt.Errorf("export archive: %w", err)
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := ledger.ExportCSV(f, txs); err != nil {
			_ = f.Close()
			return fmt.Errorf("export csv: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	fmt.Printf("✓ Exported %d transactions to %s\n", len(txs), path)
	return nil
}
