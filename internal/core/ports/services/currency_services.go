package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
)

// CurrencyReaderSvc defines read operations for cryptocurrency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific cryptocurrency by its ID.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Cryptocurrency, error)

	// ListCurrencies retrieves all available cryptocurrencies.
	ListCurrencies(ctx context.Context) ([]domain.Cryptocurrency, error)
}

// CurrencyWriterSvc defines write operations for cryptocurrency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new cryptocurrency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Cryptocurrency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the directed rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every configured rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
