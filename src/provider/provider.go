package provider

import (
	"context"

	"dompet-gateway/src/models"
	"dompet-gateway/src/sandbox"
	"dompet-gateway/src/tokenstore"
)

// Provider is the data-provider service boundary. The sync engine and the data
// handlers consume it through this interface so that in a real deployment the
// in-process implementation can be swapped for a network client without
// touching either side.
type Provider interface {
	ListAccounts(ctx context.Context, token tokenstore.UserContext) ([]models.ExternalAccount, error)
	GetIdentity(ctx context.Context, token tokenstore.UserContext) (models.Identity, error)
	ListTransactions(ctx context.Context, token tokenstore.UserContext, accountID string, dateRange *models.DateRange) ([]models.ExternalTransaction, error)
}

// SandboxProvider serves the in-process institution dataset.
type SandboxProvider struct {
	data *sandbox.Dataset
}

func NewSandboxProvider(data *sandbox.Dataset) *SandboxProvider {
	return &SandboxProvider{data: data}
}

// ListAccounts returns only the accounts inside the token's authorized set.
func (p *SandboxProvider) ListAccounts(ctx context.Context, token tokenstore.UserContext) ([]models.ExternalAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []models.ExternalAccount
	for _, acc := range p.data.AccountsForUser(token.UserID) {
		if token.Authorized(acc.AccountID) {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (p *SandboxProvider) GetIdentity(ctx context.Context, token tokenstore.UserContext) (models.Identity, error) {
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}

	identity, ok := p.data.Identity(token.UserID)
	if !ok {
		return models.Identity{}, models.NotFound("identity record not found")
	}
	return identity, nil
}

// ListTransactions fails forbidden whenever the account is outside the token's
// scope, whether or not the account exists. The date filter is applied only
// when both bounds were supplied.
func (p *SandboxProvider) ListTransactions(ctx context.Context, token tokenstore.UserContext, accountID string, dateRange *models.DateRange) ([]models.ExternalTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !token.Authorized(accountID) {
		return nil, models.Forbidden("account is not in the token's authorized scope")
	}

	txns := p.data.TransactionsForAccount(accountID)
	if dateRange == nil {
		return txns, nil
	}

	var out []models.ExternalTransaction
	for _, txn := range txns {
		if dateRange.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return out, nil
}
