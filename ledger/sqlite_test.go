package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := NewSQLite(path)
	assert.NoError(t, err)

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='transactions'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "transactions", name)
}

func TestSQLiteAddGetRemove(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	tx := Transaction{
		ID:     "T1",
		Type:   Buy,
		Date:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Amount: 0.12345678,
		Price:  42000.50,
		Fee:    9.99,
		Notes:  "first stack",
	}

	assert.NoError(t, s.Add(tx))

	got, err := s.Get("T1")
	assert.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)
	assert.Equal(t, tx.Type, got.Type)
	assert.True(t, got.Date.Equal(tx.Date))
	assert.InDelta(t, tx.Amount, got.Amount, 1e-9)
	assert.InDelta(t, tx.Price, got.Price, 1e-9)
	assert.InDelta(t, tx.Fee, got.Fee, 1e-9)
	assert.Equal(t, tx.Notes, got.Notes)

	assert.NoError(t, s.Remove("T1"))
	_, err = s.Get("T1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRemoveMissing(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	assert.ErrorIs(t, s.Remove("missing"), ErrNotFound)
}

func TestSQLiteAddRejectsInvalid(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	err := s.Add(Transaction{ID: "bad", Type: Buy, Date: time.Now(), Amount: -1, Price: 1})
	assert.Error(t, err)
}

func TestSQLiteListOrdersByDateThenInsertion(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, s.Add(Transaction{ID: "later", Type: Buy, Date: later, Amount: 1, Price: 1}))
	assert.NoError(t, s.Add(Transaction{ID: "tie-a", Type: Buy, Date: d, Amount: 1, Price: 1}))
	assert.NoError(t, s.Add(Transaction{ID: "tie-b", Type: Sell, Date: d, Amount: 1, Price: 1}))

	txs, err := s.List()
	assert.NoError(t, err)
	assert.Len(t, txs, 3)
	assert.Equal(t, "tie-a", txs[0].ID)
	assert.Equal(t, "tie-b", txs[1].ID)
	assert.Equal(t, "later", txs[2].ID)
}

func TestSQLiteUpdateProfits(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, s.Add(Transaction{ID: "s1", Type: Sell, Date: d, Amount: 1, Price: 30000}))

	err := s.UpdateProfits(map[string]float64{"s1": 1234.56, "ghost": 1})
	assert.NoError(t, err)

	got, err := s.Get("s1")
	assert.NoError(t, err)
	assert.InDelta(t, 1234.56, got.Profit, 1e-9)
}
