package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
)

// ReportingRepository defines read-only rollups over wallet balances
type ReportingRepository interface {
	// GetTotalBalancePerCurrency sums wallet balances grouped by currency, ordered by currency ID.
	GetTotalBalancePerCurrency(ctx context.Context) ([]domain.CurrencyTotal, error)
}
