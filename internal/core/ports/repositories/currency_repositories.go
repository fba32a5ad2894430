package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
)

// CurrencyReader defines read operations for cryptocurrency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific cryptocurrency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Cryptocurrency, error)

	// ListCurrencies retrieves all cryptocurrencies ordered by ID.
	ListCurrencies(ctx context.Context) ([]domain.Cryptocurrency, error)
}

// CurrencyWriter defines write operations for cryptocurrency data
type CurrencyWriter interface {
	// SaveCurrency persists a new cryptocurrency. A taken name yields apperrors.ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.Cryptocurrency) (*domain.Cryptocurrency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
