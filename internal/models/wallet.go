package models

import (
	"github.com/shopspring/decimal"
)

// Wallet represents a row of the wallets table. (user_id, currency_id) is unique.
type Wallet struct {
	WalletID   int64           `json:"walletID" db:"wallet_id"`
	UserID     int64           `json:"userID" db:"user_id"`
	CurrencyID int64           `json:"currencyID" db:"currency_id"`
	Balance    decimal.Decimal `json:"balance" db:"balance"` // NUMERIC(20,2), never negative
	AuditFields
}
