package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "ledger:rate"

// RateCache stores exchange rates by ordered currency pair.
type RateCache interface {
	// GetRate returns the cached rate and whether it was present.
	GetRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, bool, error)
	SetRate(ctx context.Context, rate domain.ExchangeRate) error
}

// RedisRateCache is a RateCache backed by redis.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRateCache creates a rate cache. A zero ttl keeps entries until evicted.
func NewRedisRateCache(client *redis.Client, ttl time.Duration) *RedisRateCache {
	return &RedisRateCache{client: client, ttl: ttl}
}

var _ RateCache = (*RedisRateCache)(nil)

func rateKey(fromCurrencyID, toCurrencyID int64) string {
	return fmt.Sprintf("%s:%d:%d", rateKeyPrefix, fromCurrencyID, toCurrencyID)
}

func (c *RedisRateCache) GetRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, bool, error) {
	data, err := c.client.Get(ctx, rateKey(fromCurrencyID, toCurrencyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached rate: %w", err)
	}

	var rate domain.ExchangeRate
	if err := json.Unmarshal(data, &rate); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached rate: %w", err)
	}
	return &rate, true, nil
}

func (c *RedisRateCache) SetRate(ctx context.Context, rate domain.ExchangeRate) error {
	data, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("failed to encode rate: %w", err)
	}
	if err := c.client.Set(ctx, rateKey(rate.FromCurrencyID, rate.ToCurrencyID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rate: %w", err)
	}
	return nil
}
