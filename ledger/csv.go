package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"tx_id", "type", "date", "amount", "price", "fee", "notes", "profit"}

// ExportCSV writes the log as CSV with a header row. Dates are RFC3339,
// BTC amounts keep 8 decimals, USD figures keep 2.
func ExportCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range txs {
		err := cw.Write([]string{
			t.ID,
			string(t.Type),
			t.Date.Format(time.RFC3339),
			btc(t.Amount),
			usd(t.Price),
			usd(t.Fee),
			t.Notes,
			usd(t.Profit),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ImportCSV parses a log previously written by ExportCSV.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv: missing header")
	}

	var out []Transaction
	for i, rec := range records[1:] {
		t, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseRecord(rec []string) (Transaction, error) {
	date, err := time.Parse(time.RFC3339, rec[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("date: %w", err)
	}
	amount, err := strconv.ParseFloat(rec[3], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("amount: %w", err)
	}
	price, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("price: %w", err)
	}
	fee, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("fee: %w", err)
	}
	profit, err := strconv.ParseFloat(rec[7], 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("profit: %w", err)
	}

	t := Transaction{
		ID:     rec[0],
		Type:   Type(rec[1]),
		Date:   date,
		Amount: amount,
		Price:  price,
		Fee:    fee,
		Notes:  rec[6],
		Profit: profit,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func btc(x float64) string {
	return strconv.FormatFloat(x, 'f', 8, 64)
}

func usd(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
