package models

const (
	AccountKindDepository = "depository"
	AccountKindEwallet    = "ewallet"
	AccountKindInvestment = "investment"
	AccountKindCredit     = "credit"
	AccountKindLoan       = "loan"
)

// ExternalAccount is an account held at a partner institution, as served by
// the gateway. Read-only from the consumer's point of view.
type ExternalAccount struct {
	AccountID         string    `json:"account_id"`
	InstitutionID     string    `json:"institution_id"`
	OwnerUserID       string    `json:"-"`
	DisplayName       string    `json:"display_name"`
	Kind              string    `json:"kind"`
	BalanceMinorUnits int64     `json:"balance_minor_units"`
	Holdings          []Holding `json:"holdings,omitempty"`
}

type Holding struct {
	Symbol          string `json:"symbol"`
	Quantity        int64  `json:"quantity"`
	ValueMinorUnits int64  `json:"value_minor_units"`
}

// LedgerAccount is the consuming application's own record of a synced account,
// keyed locally but carrying the originating external account id.
type LedgerAccount struct {
	ID                int64  `json:"id"`
	UserID            string `json:"user_id"`
	ExternalAccountID string `json:"external_account_id"`
	InstitutionID     string `json:"institution_id"`
	DisplayName       string `json:"display_name"`
	Kind              string `json:"kind"`
	BalanceMinorUnits int64  `json:"balance_minor_units"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}
