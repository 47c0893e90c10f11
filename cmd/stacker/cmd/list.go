package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/ledger"
	"github.com/hodlstack/stacker/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all transactions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	if len(txs) == 0 {
		fmt.Println("No transactions yet. Add your first one with: stacker add buy <amount> <price>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tPRICE\tTOTAL\tFEE\tPROFIT\tID")
	for _, tx := range txs {
		profit := "-"
		if tx.Type == ledger.Sell {
			profit = report.USD(tx.Profit)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format("2006-01-02"),
			tx.Type,
			report.BTC(tx.Amount),
			report.USD(tx.Price),
			report.USD(tx.Amount*tx.Price),
			report.USD(tx.Fee),
			profit,
			tx.ID,
		)
	}
	return w.Flush()
}
