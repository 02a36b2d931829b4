package models

type SyncRequest struct {
	UserID string `json:"user_id"`
}

// SyncResult is the contract returned to the caller after a sync. Either the
// full set of upserts committed, or none did.
type SyncResult struct {
	AccountsAdded     int `json:"accounts_added"`
	AccountsUpdated   int `json:"accounts_updated"`
	TransactionsAdded int `json:"transactions_added"`
}
