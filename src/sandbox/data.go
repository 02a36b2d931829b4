package sandbox

import (
	"dompet-gateway/src/models"
)

// Dataset is the in-process stand-in for institution-held data. Provisioned
// once at startup and read-only afterwards; in a real deployment this is the
// institution side of the wire.
type Dataset struct {
	identities   map[string]models.Identity
	accounts     []models.ExternalAccount
	transactions map[string][]models.ExternalTransaction
}

// Seed builds the sandbox dataset. user_budi_123 owns exactly seven linked
// accounts across the partner institutions.
func Seed() *Dataset {
	ds := &Dataset{
		identities: map[string]models.Identity{
			"user_budi_123": {
				UserID:      "user_budi_123",
				FullName:    "Budi Santoso",
				Email:       "budi.santoso@mail.com",
				PhoneNumber: "+62 812 3456 7890",
			},
			"user_siti_456": {
				UserID:      "user_siti_456",
				FullName:    "Siti Rahayu",
				Email:       "siti.rahayu@mail.com",
				PhoneNumber: "+62 813 9876 5432",
			},
		},
		accounts: []models.ExternalAccount{
			{AccountID: "acc_bca_tahapan_1", InstitutionID: "ins_bca", OwnerUserID: "user_budi_123", DisplayName: "BCA Tahapan Gold", Kind: models.AccountKindDepository, BalanceMinorUnits: 1575000000},
			{AccountID: "acc_bca_credit_1", InstitutionID: "ins_bca", OwnerUserID: "user_budi_123", DisplayName: "BCA Everyday Card", Kind: models.AccountKindCredit, BalanceMinorUnits: -235000000},
			{AccountID: "acc_mandiri_tabungan_1", InstitutionID: "ins_mandiri", OwnerUserID: "user_budi_123", DisplayName: "Mandiri Tabungan Rencana", Kind: models.AccountKindDepository, BalanceMinorUnits: 842500000},
			{AccountID: "acc_gopay_wallet_1", InstitutionID: "ins_gopay", OwnerUserID: "user_budi_123", DisplayName: "GoPay", Kind: models.AccountKindEwallet, BalanceMinorUnits: 32750000},
			{AccountID: "acc_ovo_cash_1", InstitutionID: "ins_ovo", OwnerUserID: "user_budi_123", DisplayName: "OVO Cash", Kind: models.AccountKindEwallet, BalanceMinorUnits: 12800000},
			{AccountID: "acc_bibit_porto_1", InstitutionID: "ins_bibit", OwnerUserID: "user_budi_123", DisplayName: "Bibit Portofolio", Kind: models.AccountKindInvestment, BalanceMinorUnits: 2458000000,
				Holdings: []models.Holding{
					{Symbol: "RDPT-SYARIAH", Quantity: 1200, ValueMinorUnits: 1500000000},
					{Symbol: "RDPU-MONEYMKT", Quantity: 800, ValueMinorUnits: 958000000},
				}},
			{AccountID: "acc_jenius_flexi_1", InstitutionID: "ins_jenius", OwnerUserID: "user_budi_123", DisplayName: "Jenius Flexi Cash", Kind: models.AccountKindLoan, BalanceMinorUnits: -500000000},

			{AccountID: "acc_bca_tahapan_9", InstitutionID: "ins_bca", OwnerUserID: "user_siti_456", DisplayName: "BCA Tahapan Xpresi", Kind: models.AccountKindDepository, BalanceMinorUnits: 430000000},
		},
		transactions: map[string][]models.ExternalTransaction{
			"acc_bca_tahapan_1": {
				{TransactionID: "txn_bca_001", AccountID: "acc_bca_tahapan_1", AmountMinorUnits: 1250000000, Date: "2024-07-18", Description: "Transfer dari PT Maju Jaya - Gaji Juli", Category: []string{"Income", "Salary"}},
				{TransactionID: "txn_bca_002", AccountID: "acc_bca_tahapan_1", AmountMinorUnits: -4550000, Date: "2024-07-21", Description: "Indomaret Sudirman", Category: []string{"Food and Drink", "Groceries"}},
				{TransactionID: "txn_bca_003", AccountID: "acc_bca_tahapan_1", AmountMinorUnits: -50000000, Date: "2024-07-25", Description: "Top Up GoPay", Category: []string{"Transfer"}},
			},
			"acc_bca_credit_1": {
				{TransactionID: "txn_bcacc_001", AccountID: "acc_bca_credit_1", AmountMinorUnits: -78500000, Date: "2024-07-19", Description: "Tokopedia", Category: []string{"Shops", "Online Marketplaces"}},
				{TransactionID: "txn_bcacc_002", AccountID: "acc_bca_credit_1", AmountMinorUnits: -15600000, Date: "2024-07-23", Description: "Netflix.com", Category: []string{"Service", "Subscription"}},
			},
			"acc_mandiri_tabungan_1": {
				{TransactionID: "txn_mandiri_001", AccountID: "acc_mandiri_tabungan_1", AmountMinorUnits: -100000000, Date: "2024-07-01", Description: "Setoran Rencana Bulanan", Category: []string{"Transfer", "Savings"}},
				{TransactionID: "txn_mandiri_002", AccountID: "acc_mandiri_tabungan_1", AmountMinorUnits: 1250000, Date: "2024-07-31", Description: "Bunga Tabungan", Category: []string{"Income", "Interest"}},
			},
			"acc_gopay_wallet_1": {
				{TransactionID: "txn_gopay_001", AccountID: "acc_gopay_wallet_1", AmountMinorUnits: 50000000, Date: "2024-07-25", Description: "Top Up dari BCA", Category: []string{"Transfer"}},
				{TransactionID: "txn_gopay_002", AccountID: "acc_gopay_wallet_1", AmountMinorUnits: -3850000, Date: "2024-07-26", Description: "GoFood - Warung Padang Sederhana", Category: []string{"Food and Drink", "Restaurants"}},
			},
			"acc_ovo_cash_1": {
				{TransactionID: "txn_ovo_001", AccountID: "acc_ovo_cash_1", AmountMinorUnits: -2500000, Date: "2024-07-22", Description: "Grab Transport", Category: []string{"Travel", "Ride Share"}},
			},
			"acc_jenius_flexi_1": {
				{TransactionID: "txn_jenius_001", AccountID: "acc_jenius_flexi_1", AmountMinorUnits: 25000000, Date: "2024-07-05", Description: "Angsuran Flexi Cash", Category: []string{"Payment", "Loan"}},
			},

			"acc_bca_tahapan_9": {
				{TransactionID: "txn_siti_001", AccountID: "acc_bca_tahapan_9", AmountMinorUnits: -7500000, Date: "2024-07-20", Description: "Alfamart Kemang", Category: []string{"Food and Drink", "Groceries"}},
			},
		},
	}
	return ds
}

func (ds *Dataset) HasUser(userID string) bool {
	_, ok := ds.identities[userID]
	return ok
}

func (ds *Dataset) Identity(userID string) (models.Identity, bool) {
	id, ok := ds.identities[userID]
	return id, ok
}

// AccountsForUser returns the user's accounts across all institutions, in
// seed order.
func (ds *Dataset) AccountsForUser(userID string) []models.ExternalAccount {
	var out []models.ExternalAccount
	for _, acc := range ds.accounts {
		if acc.OwnerUserID == userID {
			out = append(out, acc)
		}
	}
	return out
}

func (ds *Dataset) TransactionsForAccount(accountID string) []models.ExternalTransaction {
	txns := ds.transactions[accountID]
	out := make([]models.ExternalTransaction, len(txns))
	copy(out, txns)
	return out
}
