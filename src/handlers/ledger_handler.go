package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"dompet-gateway/src/db"
	ledgersql "dompet-gateway/src/db/sql"
	"dompet-gateway/src/models"

	"github.com/go-chi/chi/v5"
)

// The ledger endpoints serve the consuming application's own synced records,
// keyed by its internal user id, so they sit behind the app-level token
// rather than a user-scoped one. Responses are cached until the next sync
// commit.

// GetLedgerAccounts implements GET /v1/ledger/accounts?user_id=...
func GetLedgerAccounts(ledger *sql.DB, cache *db.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeError(w, models.InvalidRequest("user_id is required"))
			return
		}

		cacheKey := "ledger_accounts_" + userID
		if cached, found := cache.Get(cacheKey); found {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		accounts, err := ledgersql.GetLedgerAccounts(r.Context(), ledger, userID)
		if err != nil {
			log.Printf("ERROR: Failed to read ledger accounts for user %s: %v", userID, err)
			writeError(w, models.StorageError("failed to read ledger accounts"))
			return
		}
		if accounts == nil {
			accounts = []models.LedgerAccount{}
		}

		cache.Set(cacheKey, accounts)
		writeJSON(w, http.StatusOK, accounts)
	}
}

// GetLedgerTransactions implements GET /v1/ledger/accounts/{account_id}/transactions?user_id=...
// where {account_id} is the external account id carried on the ledger row.
func GetLedgerTransactions(ledger *sql.DB, cache *db.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeError(w, models.InvalidRequest("user_id is required"))
			return
		}
		accountID := chi.URLParam(r, "account_id")

		cacheKey := "ledger_transactions_" + userID + "_" + accountID
		if cached, found := cache.Get(cacheKey); found {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		transactions, err := ledgersql.GetLedgerTransactions(r.Context(), ledger, userID, accountID)
		if err != nil {
			log.Printf("ERROR: Failed to read ledger transactions for user %s, account %s: %v", userID, accountID, err)
			writeError(w, models.StorageError("failed to read ledger transactions"))
			return
		}
		if transactions == nil {
			transactions = []models.LedgerTransaction{}
		}

		cache.Set(cacheKey, transactions)
		writeJSON(w, http.StatusOK, transactions)
	}
}
