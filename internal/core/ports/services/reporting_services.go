package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
)

// ReportingService defines the interface for balance reporting
type ReportingService interface {
	// TotalBalancePerCurrency sums every wallet balance grouped by currency.
	TotalBalancePerCurrency(ctx context.Context) ([]domain.CurrencyTotal, error)
}
