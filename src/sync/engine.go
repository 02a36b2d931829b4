package sync

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"dompet-gateway/src/db"
	ledgersql "dompet-gateway/src/db/sql"
	"dompet-gateway/src/models"
	"dompet-gateway/src/provider"
	"dompet-gateway/src/tokenstore"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 200 * time.Millisecond
)

// Engine pulls externally-held accounts and transactions through the provider
// boundary and merges them into the internal ledger. All provider reads are
// buffered before the first write, and the writes commit as one transaction,
// so a failure anywhere leaves the ledger exactly as it was.
type Engine struct {
	provider provider.Provider
	ledger   *sql.DB
	cache    *db.Cache

	maxAttempts int
	backoff     time.Duration
}

func NewEngine(p provider.Provider, ledger *sql.DB, cache *db.Cache) *Engine {
	return &Engine{
		provider:    p,
		ledger:      ledger,
		cache:       cache,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
}

// Sync is idempotent: repeating it with no intervening external change yields
// zero added counters.
func (e *Engine) Sync(ctx context.Context, userID string, token tokenstore.UserContext) (models.SyncResult, error) {
	var result models.SyncResult

	accounts, err := e.fetchAccounts(ctx, token)
	if err != nil {
		return result, err
	}

	// Transaction fetch is scoped by the token, not by ledger state, so it can
	// run before anything is written. Account order is preserved for the
	// commit phase.
	txnsByAccount := make(map[string][]models.ExternalTransaction, len(accounts))
	for _, acc := range accounts {
		txns, err := e.fetchTransactions(ctx, token, acc.AccountID)
		if err != nil {
			return result, err
		}
		txnsByAccount[acc.AccountID] = txns
	}

	tx, err := e.ledger.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("ERROR: Failed to begin ledger transaction for user %s: %v", userID, err)
		return result, models.StorageError("failed to open ledger transaction")
	}
	defer tx.Rollback()

	for _, acc := range accounts {
		rowID, added, err := ledgersql.UpsertAccount(ctx, tx, userID, acc)
		if err != nil {
			log.Printf("ERROR: Failed to upsert account %s for user %s: %v", acc.AccountID, userID, err)
			return models.SyncResult{}, models.StorageError("failed to upsert account")
		}
		if added {
			result.AccountsAdded++
		} else {
			result.AccountsUpdated++
		}

		for _, txn := range txnsByAccount[acc.AccountID] {
			inserted, err := ledgersql.InsertTransaction(ctx, tx, rowID, txn)
			if err != nil {
				log.Printf("ERROR: Failed to insert transaction %s for user %s: %v", txn.TransactionID, userID, err)
				return models.SyncResult{}, models.StorageError("failed to insert transaction")
			}
			if inserted {
				result.TransactionsAdded++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("ERROR: Failed to commit sync for user %s: %v", userID, err)
		return models.SyncResult{}, models.StorageError("failed to commit sync")
	}

	if e.cache != nil {
		e.cache.Clear()
	}

	log.Printf("INFO: Sync complete for user %s: %d accounts added, %d updated, %d transactions added",
		userID, result.AccountsAdded, result.AccountsUpdated, result.TransactionsAdded)
	return result, nil
}

func (e *Engine) fetchAccounts(ctx context.Context, token tokenstore.UserContext) ([]models.ExternalAccount, error) {
	var accounts []models.ExternalAccount
	err := e.withRetry(ctx, func() error {
		var err error
		accounts, err = e.provider.ListAccounts(ctx, token)
		return err
	})
	if err != nil {
		return nil, wrapProviderError(err)
	}
	return accounts, nil
}

func (e *Engine) fetchTransactions(ctx context.Context, token tokenstore.UserContext, accountID string) ([]models.ExternalTransaction, error) {
	var txns []models.ExternalTransaction
	err := e.withRetry(ctx, func() error {
		var err error
		txns, err = e.provider.ListTransactions(ctx, token, accountID, nil)
		return err
	})
	if err != nil {
		return nil, wrapProviderError(err)
	}
	return txns, nil
}

// withRetry retries transient provider failures with bounded attempts and
// backoff, invisible to the caller. Authorization failures and context
// cancellation are terminal.
func (e *Engine) withRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		var gwErr *models.GatewayError
		if errors.As(lastErr, &gwErr) || ctx.Err() != nil {
			return lastErr
		}

		if attempt < e.maxAttempts {
			select {
			case <-time.After(e.backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

// wrapProviderError maps any provider failure onto sync_failed with the
// underlying reason attached.
func wrapProviderError(err error) error {
	var gwErr *models.GatewayError
	if errors.As(err, &gwErr) {
		return models.SyncFailed("data provider rejected the request: " + gwErr.Kind)
	}
	return models.SyncFailed("data provider unreachable: " + err.Error())
}
