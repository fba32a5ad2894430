package dto

import "github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"

// CurrencyTotalResponse is one row of the total balance report.
type CurrencyTotalResponse struct {
	CryptocurrencyID int64  `json:"cryptocurrencyId"`
	Cryptocurrency   string `json:"cryptocurrency"`
	TotalBalance     string `json:"totalBalance"`
}

// ToTotalBalancesResponse converts the per-currency rollup into response rows, preserving order.
func ToTotalBalancesResponse(totals []domain.CurrencyTotal) []CurrencyTotalResponse {
	res := make([]CurrencyTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CurrencyTotalResponse{
			CryptocurrencyID: t.CurrencyID,
			Cryptocurrency:   t.CurrencyName,
			TotalBalance:     domain.FormatMoney(t.TotalBalance),
		}
	}
	return res
}
