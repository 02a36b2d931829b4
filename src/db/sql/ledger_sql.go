package db

import (
	"context"
	"database/sql"
	"strings"

	"dompet-gateway/src/models"
)

// UpsertAccount inserts or updates one ledger account keyed by its external
// account id. Returns the local row id and whether a new row was created.
func UpsertAccount(ctx context.Context, tx *sql.Tx, userID string, acc models.ExternalAccount) (int64, bool, error) {
	var id int64
	query := `SELECT id FROM ledger_accounts WHERE external_account_id = ?`
	err := tx.QueryRowContext(ctx, query, acc.AccountID).Scan(&id)
	if err == sql.ErrNoRows {
		insert := `
			INSERT INTO ledger_accounts (user_id, external_account_id, institution_id, display_name, kind, balance_minor_units)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		res, err := tx.ExecContext(ctx, insert, userID, acc.AccountID, acc.InstitutionID, acc.DisplayName, acc.Kind, acc.BalanceMinorUnits)
		if err != nil {
			return 0, false, err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return 0, false, err
		}
		return id, true, nil
	}
	if err != nil {
		return 0, false, err
	}

	update := `
		UPDATE ledger_accounts
		SET display_name = ?, balance_minor_units = ?, updated_at = datetime('now')
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, update, acc.DisplayName, acc.BalanceMinorUnits, id); err != nil {
		return 0, false, err
	}
	return id, false, nil
}

// InsertTransaction records one external transaction against a ledger account.
// Already-recorded transactions are left untouched; returns whether a row was
// actually inserted.
func InsertTransaction(ctx context.Context, tx *sql.Tx, accountID int64, txn models.ExternalTransaction) (bool, error) {
	query := `
		INSERT INTO ledger_transactions (account_id, external_transaction_id, amount_minor_units, date, description, category)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (external_transaction_id) DO NOTHING
	`
	res, err := tx.ExecContext(ctx, query,
		accountID,
		txn.TransactionID,
		txn.AmountMinorUnits,
		txn.Date,
		txn.Description,
		strings.Join(txn.Category, ", "),
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func GetLedgerAccounts(ctx context.Context, ledger *sql.DB, userID string) ([]models.LedgerAccount, error) {
	query := `
		SELECT id, user_id, external_account_id, institution_id, display_name, kind, balance_minor_units, created_at, updated_at
		FROM ledger_accounts
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := ledger.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.LedgerAccount
	for rows.Next() {
		var account models.LedgerAccount
		err := rows.Scan(&account.ID, &account.UserID, &account.ExternalAccountID, &account.InstitutionID, &account.DisplayName, &account.Kind, &account.BalanceMinorUnits, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func GetLedgerTransactions(ctx context.Context, ledger *sql.DB, userID, externalAccountID string) ([]models.LedgerTransaction, error) {
	query := `
		SELECT t.id, t.account_id, t.external_transaction_id, t.amount_minor_units, t.date, t.description, t.category, t.created_at
		FROM ledger_transactions t
		JOIN ledger_accounts a ON t.account_id = a.id
		WHERE a.user_id = ? AND a.external_account_id = ?
		ORDER BY t.date, t.id
	`

	rows, err := ledger.QueryContext(ctx, query, userID, externalAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.LedgerTransaction
	for rows.Next() {
		var transaction models.LedgerTransaction
		err := rows.Scan(&transaction.ID, &transaction.AccountID, &transaction.ExternalTransactionID, &transaction.AmountMinorUnits, &transaction.Date, &transaction.Description, &transaction.Category, &transaction.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}
