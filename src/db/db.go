package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	external_account_id TEXT NOT NULL UNIQUE,
	institution_id TEXT NOT NULL,
	display_name TEXT NOT NULL,
	kind TEXT NOT NULL,
	balance_minor_units INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS ledger_transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	account_id INTEGER NOT NULL REFERENCES ledger_accounts(id),
	external_transaction_id TEXT NOT NULL UNIQUE,
	amount_minor_units INTEGER NOT NULL,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_ledger_accounts_user ON ledger_accounts(user_id);
CREATE INDEX IF NOT EXISTS idx_ledger_transactions_account ON ledger_transactions(account_id);
`

// Connect opens the internal ledger database and applies the schema. A single
// writer connection keeps SQLite free of "database is locked" errors; sync
// commits are serialized through it.
func Connect(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", path)
	}

	ledger, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	ledger.SetMaxOpenConns(1)

	if err := ledger.Ping(); err != nil {
		ledger.Close()
		return nil, fmt.Errorf("ping ledger: %w", err)
	}

	if _, err := ledger.Exec(schema); err != nil {
		ledger.Close()
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}

	return ledger, nil
}
