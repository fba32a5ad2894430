package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the directed rate from one currency to another.
	// A missing pair yields apperrors.ErrRateNotFound; the reverse pair is never consulted.
	FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every rate ordered by (from, to).
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new rate. An existing ordered pair yields apperrors.ErrDuplicate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
