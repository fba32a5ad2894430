package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate stores the directed conversion rate between two cryptocurrencies.
type ExchangeRate struct {
	ExchangeRateID int64           `json:"exchangeRateID" db:"exchange_rate_id"` // Primary Key
	FromCurrencyID int64           `json:"fromCurrencyID" db:"from_currency_id"` // FK -> cryptocurrencies.currency_id
	ToCurrencyID   int64           `json:"toCurrencyID" db:"to_currency_id"`     // FK -> cryptocurrencies.currency_id
	Rate           decimal.Decimal `json:"rate" db:"rate"`                       // NUMERIC(20,8)
	AuditFields
}
