package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyTotal is one row of the per-currency balance rollup.
type CurrencyTotal struct {
	CurrencyID   int64           `json:"currencyID"`
	CurrencyName string          `json:"currencyName"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}
