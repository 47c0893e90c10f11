package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/ledger"
	"github.com/hodlstack/stacker/report"
)

var gainsCmd = &cobra.Command{
	Use:   "gains [year]",
	Short: "Show FIFO capital gains for a tax year",
	Long: `Compute the FIFO capital gains realized in one calendar year.

Sales from earlier years still consume their lots during the replay, so
the cost basis of in-year sales reflects true history. With no year
argument the years present in the ledger are listed.

Examples:
  stacker gains 2024
  stacker gains 2024 --out 2024-report.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGains,
}

var gainsOut string

func init() {
	rootCmd.AddCommand(gainsCmd)

	gainsCmd.Flags().StringVar(&gainsOut, "out", "", "also write the report to this file")
}

func runGains(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	if len(args) == 0 {
		years := ledger.Years(txs)
		if len(years) == 0 {
			fmt.Println("No transactions available for analysis")
			return nil
		}
		fmt.Println("Years with activity:")
		for _, y := range years {
			fmt.Printf("  %d\n", y)
		}
		return nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("year: %w", err)
	}

	detail := fifo.DetailForYear(txs, year)
	out := report.FormatYear(detail)
	fmt.Print(out)

	if gainsOut != "" {
		if err := os.WriteFile(gainsOut, []byte(out), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("\n✓ Report written to %s\n", gainsOut)
	}
	return nil
}
