package ledger

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the persistent transaction store.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Add(t Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}

	_, err := s.db.Exec(`
		INSERT INTO transactions
		(tx_id, tx_type, tx_date, amount, price, fee, notes, profit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.Date, t.Amount, t.Price, t.Fee, t.Notes, t.Profit,
	)
	return err
}

func (s *SQLite) Remove(id string) error {
	res, err := s.db.Exec(`DELETE FROM transactions WHERE tx_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns a single transaction by id.
func (s *SQLite) Get(id string) (Transaction, error) {
	row := s.db.QueryRow(`
		SELECT tx_id, tx_type, tx_date, amount, price, fee, notes, profit
		FROM transactions
		WHERE tx_id = ?`, id)

	var t Transaction
	var typ string
	err := row.Scan(&t.ID, &typ, &t.Date, &t.Amount, &t.Price, &t.Fee, &t.Notes, &t.Profit)
	if err != nil {
		if err == sql.ErrNoRows {
			return Transaction{}, ErrNotFound
		}
		return Transaction{}, err
	}
	t.Type = Type(typ)
	return t, nil
}

// List returns every transaction ordered by date ascending. Same-day
// rows come back in insertion (rowid) order, matching replay ordering.
func (s *SQLite) List() ([]Transaction, error) {
	rows, err := s.db.Query(`
		SELECT tx_id, tx_type, tx_date, amount, price, fee, notes, profit
		FROM transactions
		ORDER BY tx_date ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		var typ string
		if err := rows.Scan(&t.ID, &typ, &t.Date, &t.Amount, &t.Price, &t.Fee, &t.Notes, &t.Profit); err != nil {
			return nil, err
		}
		t.Type = Type(typ)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfits writes replay-derived profits back onto sell rows so a
// plain List shows them without another replay. Ids not present in the
// table are ignored.
func (s *SQLite) UpdateProfits(profits map[string]float64) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for id, p := range profits {
		if _, err := dbTx.Exec(`UPDATE transactions SET profit = ? WHERE tx_id = ?`, p, id); err != nil {
			dbTx.Rollback()
			return err
		}
	}
	return dbTx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
