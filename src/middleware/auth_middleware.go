package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dompet-gateway/src/auth"
	"dompet-gateway/src/models"
	"dompet-gateway/src/tokenstore"
)

// Missing, malformed, and unrecognized bearer tokens all map to 401
// unauthorized; 403 forbidden is reserved for a recognized token touching an
// out-of-scope resource.

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}

func writeAuthError(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:            models.ErrUnauthorized,
		ErrorDescription: description,
	})
}

// UserAuthMiddleware resolves a user-scoped access token from the store and
// places its context on the request.
func UserAuthMiddleware(accessTokens *tokenstore.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, "missing or malformed Authorization header")
				return
			}

			rec, ok := accessTokens.Get(token)
			if !ok {
				log.Printf("ERROR: Unrecognized access token on %s from %s", r.URL.Path, r.RemoteAddr)
				writeAuthError(w, "access token is not recognized")
				return
			}

			user, ok := rec.Context.(tokenstore.UserContext)
			if !ok {
				writeAuthError(w, "a user-scoped access token is required")
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", user.UserID)
			ctx = context.WithValue(ctx, "user_token", user)

			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}

// AppAuthMiddleware requires an application-level token from the
// client-credentials grant.
func AppAuthMiddleware(authority *auth.Authority) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeAuthError(w, "missing or malformed Authorization header")
				return
			}

			clientID, err := authority.ValidateAppToken(token)
			if err != nil {
				log.Printf("ERROR: App token rejected on %s from %s: %v", r.URL.Path, r.RemoteAddr, err)
				writeAuthError(w, "app token is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), "client_id", clientID)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}

// UserTokenFrom returns the resolved user token context, if the request passed
// through UserAuthMiddleware.
func UserTokenFrom(r *http.Request) (tokenstore.UserContext, bool) {
	user, ok := r.Context().Value("user_token").(tokenstore.UserContext)
	return user, ok
}
