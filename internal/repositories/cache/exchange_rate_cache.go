// Package cache holds read-through caches that decorate the repository ports.
package cache

import (
	"context"
	"log/slog"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
)

// CachedExchangeRateRepository serves FindExchangeRate from a RateCache and falls back to the
// wrapped repository. Rates are immutable once created, so only hits are stored; misses always
// reach the repository. Cache failures degrade to the repository and are logged.
type CachedExchangeRateRepository struct {
	portsrepo.ExchangeRateRepositoryFacade
	cache RateCache
}

// NewCachedExchangeRateRepository wraps next with cache.
func NewCachedExchangeRateRepository(next portsrepo.ExchangeRateRepositoryFacade, cache RateCache) *CachedExchangeRateRepository {
	return &CachedExchangeRateRepository{
		ExchangeRateRepositoryFacade: next,
		cache:                        cache,
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*CachedExchangeRateRepository)(nil)

func (r *CachedExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	cached, ok, err := r.cache.GetRate(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		slog.WarnContext(ctx, "Rate cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	rate, err := r.ExchangeRateRepositoryFacade.FindExchangeRate(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetRate(ctx, *rate); err != nil {
		slog.WarnContext(ctx, "Rate cache write failed", slog.String("error", err.Error()))
	}
	return rate, nil
}

// SaveExchangeRate stores the rate and primes the cache with it.
func (r *CachedExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	saved, err := r.ExchangeRateRepositoryFacade.SaveExchangeRate(ctx, rate)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetRate(ctx, *saved); err != nil {
		slog.WarnContext(ctx, "Rate cache write failed", slog.String("error", err.Error()))
	}
	return saved, nil
}
