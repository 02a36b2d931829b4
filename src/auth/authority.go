package auth

import (
	"log"
	"time"

	"dompet-gateway/src/models"
	"dompet-gateway/src/tokenstore"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Authority implements the client-credentials grant: it authenticates the
// consuming application itself, not an end user. The registered secret is kept
// only as a bcrypt hash and verified in constant time.
type Authority struct {
	clientID         string
	clientSecretHash []byte
	jwtSecret        []byte
	tokenTTL         time.Duration
	accessTokens     *tokenstore.Store
}

func NewAuthority(clientID string, clientSecretHash []byte, jwtSecret []byte, tokenTTL time.Duration, accessTokens *tokenstore.Store) *Authority {
	return &Authority{
		clientID:         clientID,
		clientSecretHash: clientSecretHash,
		jwtSecret:        jwtSecret,
		tokenTTL:         tokenTTL,
		accessTokens:     accessTokens,
	}
}

// IssueAppToken validates the grant and mints a fresh application-level bearer
// token. Each call mints a new independent token.
func (a *Authority) IssueAppToken(clientID, clientSecret, grantType string) (string, int64, error) {
	if grantType != "client_credentials" {
		return "", 0, models.UnsupportedGrantType("grant_type must be client_credentials")
	}
	if clientID == "" || clientSecret == "" {
		return "", 0, models.InvalidRequest("client_id and client_secret are required")
	}
	if clientID != a.clientID {
		log.Printf("ERROR: Token request for unknown client %s", clientID)
		return "", 0, models.InvalidClient("client authentication failed")
	}
	if err := bcrypt.CompareHashAndPassword(a.clientSecretHash, []byte(clientSecret)); err != nil {
		log.Printf("ERROR: Invalid client secret for client %s", clientID)
		return "", 0, models.InvalidClient("client authentication failed")
	}

	now := time.Now()
	expiresIn := int64(a.tokenTTL.Seconds())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"client_id": clientID,
		"iat":       now.Unix(),
		"exp":       now.Add(a.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(a.jwtSecret)
	if err != nil {
		log.Printf("ERROR: Failed to sign app token for client %s: %v", clientID, err)
		return "", 0, models.StorageError("failed to mint token")
	}

	a.accessTokens.Put(tokenString, tokenstore.Record{
		Context:    tokenstore.AppContext{ClientID: clientID},
		IssuedAt:   now,
		TTLSeconds: expiresIn,
	})

	log.Printf("INFO: Issued app token for client %s", clientID)
	return tokenString, expiresIn, nil
}

// ValidateAppToken checks signature, expiry, and that the token is still on
// record (issued tokens are revocable by deletion from the store).
func (a *Authority) ValidateAppToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.Unauthorized("invalid signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", models.Unauthorized("app token is invalid or expired")
	}

	rec, ok := a.accessTokens.Get(tokenString)
	if !ok {
		return "", models.Unauthorized("app token is not recognized")
	}
	app, ok := rec.Context.(tokenstore.AppContext)
	if !ok {
		return "", models.Unauthorized("token is not an application token")
	}
	return app.ClientID, nil
}
