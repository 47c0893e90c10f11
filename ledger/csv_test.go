package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportImportCSV(t *testing.T) {
	t.Parallel()

	txs := []Transaction{
		{
			ID:     "b1",
			Type:   Buy,
			Date:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount: 0.12345678,
			Price:  16500,
			Fee:    4.2,
			Notes:  "weekly, dca",
		},
		{
			ID:     "s1",
			Type:   Sell,
			Date:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Amount: 0.1,
			Price:  27000,
			Profit: 1050,
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, txs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "tx_id,type,date,amount,price,fee,notes,profit", lines[0])
	assert.Contains(t, lines[1], "0.12345678")
	assert.Contains(t, lines[1], `"weekly, dca"`)

	got, err := ImportCSV(&buf)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, Buy, got[0].Type)
	assert.True(t, got[0].Date.Equal(txs[0].Date))
	assert.InDelta(t, 0.12345678, got[0].Amount, 1e-9)
	assert.Equal(t, "weekly, dca", got[0].Notes)
	assert.InDelta(t, 1050, got[1].Profit, 1e-9)
}

func TestImportCSVRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ImportCSV(strings.NewReader(""))
	assert.Error(t, err)

	bad := "tx_id,type,date,amount,price,fee,notes,profit\n" +
		"x,buy,not-a-date,1,1,0,,0\n"
	_, err = ImportCSV(strings.NewReader(bad))
	assert.Error(t, err)

	negative := "tx_id,type,date,amount,price,fee,notes,profit\n" +
		"x,buy,2023-01-01T00:00:00Z,-1,1,0,,0\n"
	_, err = ImportCSV(strings.NewReader(negative))
	assert.Error(t, err)
}

func TestArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/ledger.csv.xz"

	txs := []Transaction{
		{ID: "b1", Type: Buy, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Amount: 1, Price: 20000},
		{ID: "s1", Type: Sell, Date: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), Amount: 0.5, Price: 29000, Fee: 1},
	}

	assert.NoError(t, ExportArchive(path, txs))

	got, err := ImportArchive(path)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "s1", got[1].ID)
	assert.InDelta(t, 29000, got[1].Price, 1e-9)
}
