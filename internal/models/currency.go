package models

// Cryptocurrency represents a row of the cryptocurrencies table.
type Cryptocurrency struct {
	CurrencyID int64  `json:"currencyID" db:"currency_id"` // Primary Key
	Name       string `json:"name" db:"name"`              // Unique, e.g. "BTC"
	AuditFields
}
