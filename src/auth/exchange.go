package auth

import (
	"log"

	"dompet-gateway/src/models"
	"dompet-gateway/src/sandbox"
	"dompet-gateway/src/tokenstore"

	"github.com/google/uuid"
)

// Exchanger swaps a single-use public token for a long-lived, user-scoped
// access token. The critical property: a public token is never exchangeable
// twice, even under concurrent requests, which the store's ConsumeOnce
// guarantees.
type Exchanger struct {
	data         *sandbox.Dataset
	publicTokens *tokenstore.Store
	accessTokens *tokenstore.Store
}

func NewExchanger(data *sandbox.Dataset, publicTokens, accessTokens *tokenstore.Store) *Exchanger {
	return &Exchanger{data: data, publicTokens: publicTokens, accessTokens: accessTokens}
}

// Exchange consumes the public token and returns an access token scoped to
// every account the bound user holds across all institutions.
func (e *Exchanger) Exchange(publicToken string) (string, string, error) {
	rec, ok := e.publicTokens.ConsumeOnce(publicToken)
	if !ok {
		return "", "", models.InvalidGrant("public token is invalid or expired")
	}

	user, ok := rec.Context.(tokenstore.UserContext)
	if !ok {
		return "", "", models.InvalidGrant("public token is invalid or expired")
	}

	scope := make(map[string]struct{})
	for _, acc := range e.data.AccountsForUser(user.UserID) {
		scope[acc.AccountID] = struct{}{}
	}

	accessToken := "access-sandbox-" + uuid.NewString()
	e.accessTokens.Put(accessToken, tokenstore.Record{
		Context: tokenstore.UserContext{
			UserID:               user.UserID,
			AuthorizedAccountIDs: scope,
		},
	})

	log.Printf("INFO: Exchanged public token for user %s, %d accounts in scope", user.UserID, len(scope))
	return accessToken, user.UserID, nil
}
