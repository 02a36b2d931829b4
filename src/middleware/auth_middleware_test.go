package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dompet-gateway/src/auth"
	"dompet-gateway/src/models"
	"dompet-gateway/src/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserTokenFrom(r)
		require.True(t, ok)
		w.Write([]byte(user.UserID))
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestUserAuthMiddleware(t *testing.T) {
	store := tokenstore.New()
	store.Put("access-sandbox-abc", tokenstore.Record{
		Context: tokenstore.UserContext{UserID: "user_budi_123"},
	})
	store.Put("app-token", tokenstore.Record{
		Context: tokenstore.AppContext{ClientID: "dompet_app"},
	})

	handler := UserAuthMiddleware(store)(protectedHandler(t))

	cases := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "access-sandbox-abc", http.StatusUnauthorized},
		{"unknown token", "Bearer access-sandbox-nope", http.StatusUnauthorized},
		{"app token on user endpoint", "Bearer app-token", http.StatusUnauthorized},
		{"valid token", "Bearer access-sandbox-abc", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/v1/accounts", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			handler.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusUnauthorized {
				body := decodeError(t, w)
				assert.Equal(t, models.ErrUnauthorized, body.Error)
			} else {
				assert.Equal(t, "user_budi_123", w.Body.String())
			}
		})
	}
}

func TestAppAuthMiddleware(t *testing.T) {
	store := tokenstore.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)
	authority := auth.NewAuthority("dompet_app", hash, []byte("secret"), time.Minute, store)

	token, _, err := authority.IssueAppToken("dompet_app", "rahasia", "client_credentials")
	require.NoError(t, err)

	handler := AppAuthMiddleware(authority)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/sandbox/public_token/create", nil)
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/v1/sandbox/public_token/create", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
