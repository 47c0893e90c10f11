package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hodlstack/stacker/fifo"
	"github.com/hodlstack/stacker/ledger"
	"github.com/hodlstack/stacker/pkg/id"
	"github.com/hodlstack/stacker/report"
)

var addCmd = &cobra.Command{
	Use:   "add <buy|sell> <amount> <price>",
	Short: "Record a buy or sell transaction",
	Long: `Record a transaction in the ledger.

Amount is in BTC, price in USD per BTC. Sells are checked against the
balance available on the transaction date so you cannot record selling
more than you own.

Examples:
  stacker add buy 0.5 30000 --date 2024-01-15 --fee 12.50
  stacker add sell 0.25 42000 --notes "rebalancing"`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

var (
	addDate  string
	addFee   float64
	addNotes string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "transaction date YYYY-MM-DD (default today)")
	addCmd.Flags().Float64Var(&addFee, "fee", 0, "transaction fee in USD")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-text notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	txType := ledger.Type(args[0])

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}

	date := time.Now()
	if addDate != "" {
		date, err = time.ParseInLocation("2006-01-02", addDate, time.Local)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	tx := ledger.Transaction{
		ID:     id.New(),
		Type:   txType,
		Date:   date,
		Amount: amount,
		Price:  price,
		Fee:    addFee,
		Notes:  addNotes,
	}
	if err := tx.Validate(); err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.List()
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	if tx.Type == ledger.Sell {
		available := ledger.AvailableAt(txs, tx.Date)
		if tx.Amount > available {
			return fmt.Errorf("cannot sell more than you own: %s BTC available on %s",
				report.BTC(available), tx.Date.Format("2006-01-02"))
		}
	}

	if err := store.Add(tx); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}

	// Recompute sale profits so list shows them without a replay.
	sum := fifo.ReplayAll(append(txs, tx))
	if err := store.UpdateProfits(sum.SaleProfits); err != nil {
		return fmt.Errorf("update profits: %w", err)
	}

	fmt.Printf("✓ Recorded %s of %s BTC @ %s (%s)\n",
		tx.Type, report.BTC(tx.Amount), report.USD(tx.Price), tx.ID)
	return nil
}
