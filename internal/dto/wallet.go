package dto

import (
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundWalletRequest credits a user's wallet (admin operation).
type FundWalletRequest struct {
	UserID           int64           `json:"userId" binding:"required,gt=0"`
	CryptocurrencyID int64           `json:"cryptocurrencyId" binding:"required,gt=0"`
	Amount           decimal.Decimal `json:"amount" binding:"positive_decimal"`
}

// WalletResponse defines the data returned for a wallet. Balance always carries two fractional digits.
type WalletResponse struct {
	UserID           int64  `json:"userId"`
	CryptocurrencyID int64  `json:"cryptocurrencyId"`
	Balance          string `json:"balance"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		UserID:           w.UserID,
		CryptocurrencyID: w.CurrencyID,
		Balance:          domain.FormatMoney(w.Balance),
	}
}

// ToListWalletResponse converts a slice of domain.Wallet to WalletResponse DTOs
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	res := make([]WalletResponse, len(wallets))
	for i := range wallets {
		res[i] = ToWalletResponse(&wallets[i])
	}
	return res
}
