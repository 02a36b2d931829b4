package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dompet-gateway/src/metrics"
	"dompet-gateway/src/middleware"
	"dompet-gateway/src/models"
	"dompet-gateway/src/sync"
)

// SyncAccounts implements POST /v1/sync: it pulls the bearer token's external
// accounts and transactions into the internal ledger, exactly once per
// linking event.
func SyncAccounts(engine *sync.Engine, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middleware.UserTokenFrom(r)
		if !ok {
			writeError(w, models.Unauthorized("missing access token context"))
			return
		}

		var req models.SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode sync request body: %v", err)
			writeError(w, models.InvalidRequest("request body must be JSON"))
			return
		}
		if req.UserID == "" {
			writeError(w, models.InvalidRequest("user_id is required"))
			return
		}

		result, err := engine.Sync(r.Context(), req.UserID, token)
		if err != nil {
			m.SyncRuns.WithLabelValues("error").Inc()
			writeError(w, err)
			return
		}

		m.SyncRuns.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, result)
	}
}
