package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dompet-gateway/src/auth"
	"dompet-gateway/src/metrics"
	"dompet-gateway/src/models"
)

// IssueToken implements POST /v1/oauth2/token, the client-credentials leg.
func IssueToken(authority *auth.Authority, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode token request body: %v", err)
			writeError(w, models.InvalidRequest("request body must be JSON"))
			return
		}

		token, expiresIn, err := authority.IssueAppToken(req.ClientID, req.ClientSecret, req.GrantType)
		if err != nil {
			writeError(w, err)
			return
		}

		m.TokensIssued.WithLabelValues("app").Inc()
		writeJSON(w, http.StatusOK, models.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		})
	}
}

// ExchangeToken implements POST /v1/token/exchange. The public token is itself
// the secret; no other auth applies.
func ExchangeToken(exchanger *auth.Exchanger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode exchange request body: %v", err)
			writeError(w, models.InvalidRequest("request body must be JSON"))
			return
		}
		if req.PublicToken == "" {
			writeError(w, models.InvalidRequest("public_token is required"))
			return
		}

		accessToken, userID, err := exchanger.Exchange(req.PublicToken)
		if err != nil {
			m.ExchangeFailures.Inc()
			writeError(w, err)
			return
		}

		m.TokensIssued.WithLabelValues("user").Inc()
		writeJSON(w, http.StatusOK, models.ExchangeResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			UserID:      userID,
		})
	}
}
