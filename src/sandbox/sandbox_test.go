package sandbox

import (
	"strings"
	"testing"

	"dompet-gateway/src/models"
	"dompet-gateway/src/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataset(t *testing.T) {
	ds := Seed()

	accounts := ds.AccountsForUser("user_budi_123")
	require.Len(t, accounts, 7)
	assert.Equal(t, "acc_bca_tahapan_1", accounts[0].AccountID)

	txns := ds.TransactionsForAccount("acc_bca_tahapan_1")
	assert.Len(t, txns, 3)

	identity, ok := ds.Identity("user_budi_123")
	require.True(t, ok)
	assert.Equal(t, "Budi Santoso", identity.FullName)

	assert.Empty(t, ds.AccountsForUser("user_unknown"))
	assert.Empty(t, ds.TransactionsForAccount("acc_unknown"))
}

func TestCreatePublicToken(t *testing.T) {
	store := tokenstore.New()
	svc := NewService(Seed(), store)

	token, err := svc.CreatePublicToken("user_budi_123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "public-sandbox-"))

	rec, ok := store.Get(token)
	require.True(t, ok)
	user, ok := rec.Context.(tokenstore.UserContext)
	require.True(t, ok)
	assert.Equal(t, "user_budi_123", user.UserID)
}

func TestCreatePublicTokenUnknownUser(t *testing.T) {
	svc := NewService(Seed(), tokenstore.New())

	_, err := svc.CreatePublicToken("user_unknown")
	require.Error(t, err)

	var gwErr *models.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, models.ErrInvalidRequest, gwErr.Kind)
}

func TestSeedPublicTokens(t *testing.T) {
	store := tokenstore.New()
	svc := NewService(Seed(), store)
	svc.SeedPublicTokens()

	rec, ok := store.Get("good_public_token_for_budi")
	require.True(t, ok)
	user := rec.Context.(tokenstore.UserContext)
	assert.Equal(t, "user_budi_123", user.UserID)
}
