package dto

import (
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest moves value from one user's wallet to another's, converting between currencies when they differ.
type TransferRequest struct {
	FromUserID     int64           `json:"fromUserId" binding:"required,gt=0"`
	ToUserID       int64           `json:"toUserId" binding:"required,gt=0"`
	FromCurrencyID int64           `json:"fromCurrencyId" binding:"required,gt=0"`
	ToCurrencyID   int64           `json:"toCurrencyId" binding:"required,gt=0"`
	Amount         decimal.Decimal `json:"amount" binding:"positive_decimal"`
}

// TransferResponse reports a completed transfer.
type TransferResponse struct {
	Message        string         `json:"message"`
	ReceivedAmount string         `json:"receivedAmount"`
	Rate           string         `json:"rate"`
	FromWallet     WalletResponse `json:"fromWallet"`
	ToWallet       WalletResponse `json:"toWallet"`
}

// ToTransferResponse converts a domain.TransferResult to TransferResponse DTO
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		Message:        "Transfer successful",
		ReceivedAmount: domain.FormatMoney(res.ReceivedAmount),
		Rate:           res.Rate.String(),
		FromWallet:     ToWalletResponse(&res.FromWallet),
		ToWallet:       ToWalletResponse(&res.ToWallet),
	}
}
