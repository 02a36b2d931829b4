package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dompet-gateway/src/metrics"
	"dompet-gateway/src/models"
	"dompet-gateway/src/sandbox"
)

// CreateSandboxPublicToken implements POST /v1/sandbox/public_token/create,
// the simulated institution login. Requires an app-level bearer token.
func CreateSandboxPublicToken(svc *sandbox.Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreatePublicTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode sandbox public token request body: %v", err)
			writeError(w, models.InvalidRequest("request body must be JSON"))
			return
		}
		if req.UserID == "" {
			writeError(w, models.InvalidRequest("user_id is required"))
			return
		}

		token, err := svc.CreatePublicToken(req.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		m.TokensIssued.WithLabelValues("public").Inc()
		writeJSON(w, http.StatusCreated, models.CreatePublicTokenResponse{
			PublicToken: token,
		})
	}
}
