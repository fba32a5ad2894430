package domain

import "github.com/shopspring/decimal"

// ExchangeRate is a directed conversion edge between two cryptocurrencies.
// A rate for (A, B) says nothing about (B, A).
type ExchangeRate struct {
	ExchangeRateID int64           `json:"exchangeRateID"`
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"` // Always positive
	AuditFields
}
