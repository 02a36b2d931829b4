package auth

import (
	"testing"
	"time"

	"dompet-gateway/src/models"
	"dompet-gateway/src/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthority(t *testing.T, store *tokenstore.Store) *Authority {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-sandbox"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthority("dompet_app", hash, []byte("test-jwt-secret"), 30*time.Minute, store)
}

func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var gwErr *models.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, kind, gwErr.Kind)
}

func TestIssueAppTokenBadGrantType(t *testing.T) {
	a := newTestAuthority(t, tokenstore.New())

	_, _, err := a.IssueAppToken("dompet_app", "rahasia-sandbox", "authorization_code")
	assertKind(t, err, models.ErrUnsupportedGrantType)
}

func TestIssueAppTokenMissingFields(t *testing.T) {
	a := newTestAuthority(t, tokenstore.New())

	_, _, err := a.IssueAppToken("", "rahasia-sandbox", "client_credentials")
	assertKind(t, err, models.ErrInvalidRequest)

	_, _, err = a.IssueAppToken("dompet_app", "", "client_credentials")
	assertKind(t, err, models.ErrInvalidRequest)
}

func TestIssueAppTokenBadCredentials(t *testing.T) {
	a := newTestAuthority(t, tokenstore.New())

	_, _, err := a.IssueAppToken("other_app", "rahasia-sandbox", "client_credentials")
	assertKind(t, err, models.ErrInvalidClient)

	_, _, err = a.IssueAppToken("dompet_app", "wrong-secret", "client_credentials")
	assertKind(t, err, models.ErrInvalidClient)
}

func TestIssueAppTokenSuccess(t *testing.T) {
	store := tokenstore.New()
	a := newTestAuthority(t, store)

	token, expiresIn, err := a.IssueAppToken("dompet_app", "rahasia-sandbox", "client_credentials")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1800), expiresIn)

	clientID, err := a.ValidateAppToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dompet_app", clientID)

	// each call mints an independent token
	token2, _, err := a.IssueAppToken("dompet_app", "rahasia-sandbox", "client_credentials")
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestValidateAppTokenRejections(t *testing.T) {
	store := tokenstore.New()
	a := newTestAuthority(t, store)

	_, err := a.ValidateAppToken("not-a-jwt")
	assertKind(t, err, models.ErrUnauthorized)

	token, _, err := a.IssueAppToken("dompet_app", "rahasia-sandbox", "client_credentials")
	require.NoError(t, err)

	// revoked tokens stop validating even while the JWT itself is unexpired
	store.Revoke(token)
	_, err = a.ValidateAppToken(token)
	assertKind(t, err, models.ErrUnauthorized)
}
