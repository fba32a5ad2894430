package domain

import "github.com/shopspring/decimal"

// Wallet is the balance of one cryptocurrency held by one user.
// (UserID, CurrencyID) is unique and Balance is never negative.
type Wallet struct {
	WalletID   int64           `json:"walletID"`
	UserID     int64           `json:"userID"`
	CurrencyID int64           `json:"currencyID"`
	Balance    decimal.Decimal `json:"balance"`
	AuditFields
}

// WalletKey identifies a wallet by its owning user and currency.
type WalletKey struct {
	UserID     int64
	CurrencyID int64
}

// Less orders keys by user then currency. Stores lock wallets in this order.
func (k WalletKey) Less(other WalletKey) bool {
	if k.UserID != other.UserID {
		return k.UserID < other.UserID
	}
	return k.CurrencyID < other.CurrencyID
}

// Key returns the wallet's composite key.
func (w Wallet) Key() WalletKey {
	return WalletKey{UserID: w.UserID, CurrencyID: w.CurrencyID}
}
