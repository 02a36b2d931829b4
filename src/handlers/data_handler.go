package handlers

import (
	"log"
	"net/http"

	"dompet-gateway/src/middleware"
	"dompet-gateway/src/models"
	"dompet-gateway/src/provider"
	"dompet-gateway/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetAccounts implements GET /v1/accounts.
func GetAccounts(p provider.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middleware.UserTokenFrom(r)
		if !ok {
			writeError(w, models.Unauthorized("missing access token context"))
			return
		}

		accounts, err := p.ListAccounts(r.Context(), token)
		if err != nil {
			log.Printf("ERROR: Failed to list accounts for user %s: %v", token.UserID, err)
			writeError(w, err)
			return
		}
		if accounts == nil {
			accounts = []models.ExternalAccount{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"request_id": uuid.NewString(),
			"accounts":   accounts,
		})
	}
}

// GetTransactions implements GET /v1/accounts/{account_id}/transactions with
// the optional both-or-neither date filter.
func GetTransactions(p provider.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middleware.UserTokenFrom(r)
		if !ok {
			writeError(w, models.Unauthorized("missing access token context"))
			return
		}
		accountID := chi.URLParam(r, "account_id")

		dateRange, err := util.ParseDateRange(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
		if err != nil {
			writeError(w, err)
			return
		}

		transactions, err := p.ListTransactions(r.Context(), token, accountID, dateRange)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %s, account %s: %v", token.UserID, accountID, err)
			writeError(w, err)
			return
		}
		if transactions == nil {
			transactions = []models.ExternalTransaction{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"request_id":   uuid.NewString(),
			"transactions": transactions,
		})
	}
}

// GetIdentity implements GET /v1/identity.
func GetIdentity(p provider.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middleware.UserTokenFrom(r)
		if !ok {
			writeError(w, models.Unauthorized("missing access token context"))
			return
		}

		identity, err := p.GetIdentity(r.Context(), token)
		if err != nil {
			log.Printf("ERROR: Failed to get identity for user %s: %v", token.UserID, err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"request_id": uuid.NewString(),
			"identity":   identity,
		})
	}
}
