package domain

// Cryptocurrency represents a currency wallets can be denominated in.
type Cryptocurrency struct {
	CurrencyID int64  `json:"currencyID"` // Primary Key
	Name       string `json:"name"`       // Unique, e.g. "BTC"
	AuditFields
}
