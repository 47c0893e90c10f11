package ledger

const Schema = `
CREATE TABLE IF NOT EXISTS transactions (
	tx_id TEXT PRIMARY KEY,
	tx_type TEXT NOT NULL,
	tx_date DATETIME NOT NULL,
	amount REAL NOT NULL,
	price REAL NOT NULL,
	fee REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	profit REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(tx_date);
`
