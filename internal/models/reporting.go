package models

import "github.com/shopspring/decimal"

// CurrencyTotal is a row of the per-currency balance rollup.
type CurrencyTotal struct {
	CurrencyID   int64           `db:"currency_id"`
	CurrencyName string          `db:"name"`
	TotalBalance decimal.Decimal `db:"total_balance"`
}
