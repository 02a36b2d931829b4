package models

// ExternalTransaction belongs to exactly one ExternalAccount. Dates are
// YYYY-MM-DD strings, amounts are integer minor units (IDR).
type ExternalTransaction struct {
	TransactionID    string   `json:"transaction_id"`
	AccountID        string   `json:"account_id"`
	AmountMinorUnits int64    `json:"amount_minor_units"`
	Date             string   `json:"date"`
	Description      string   `json:"description"`
	Category         []string `json:"category"`
}

// LedgerTransaction is the consumer's own record of a synced transaction.
// Immutable once recorded.
type LedgerTransaction struct {
	ID                    int64  `json:"id"`
	AccountID             int64  `json:"account_id"`
	ExternalTransactionID string `json:"external_transaction_id"`
	AmountMinorUnits      int64  `json:"amount_minor_units"`
	Date                  string `json:"date"`
	Description           string `json:"description"`
	Category              string `json:"category"`
	CreatedAt             string `json:"created_at"`
}
