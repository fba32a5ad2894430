package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the exchange rate ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a new directed rate. Rates are never updated in place.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if rate.FromCurrencyID == rate.ToCurrencyID {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	modelRate := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (from_currency_id, to_currency_id, rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING exchange_rate_id, rate, created_at, last_updated_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelRate.FromCurrencyID,
		modelRate.ToCurrencyID,
		modelRate.Rate,
		modelRate.CreatedAt,
		modelRate.LastUpdatedAt,
	).Scan(&modelRate.ExchangeRateID, &modelRate.Rate, &modelRate.CreatedAt, &modelRate.LastUpdatedAt)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("exchange rate %d -> %d already exists",
			modelRate.FromCurrencyID, modelRate.ToCurrencyID))
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// FindExchangeRate retrieves the rate for the ordered pair. The inverse pair is never consulted.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_id, to_currency_id, rate, created_at, last_updated_at
		FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2;
	`
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, fromCurrencyID, toCurrencyID).Scan(
		&modelRate.ExchangeRateID,
		&modelRate.FromCurrencyID,
		&modelRate.ToCurrencyID,
		&modelRate.Rate,
		&modelRate.CreatedAt,
		&modelRate.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d -> %d", apperrors.ErrRateNotFound, fromCurrencyID, toCurrencyID)
		}
		return nil, translateError(err, "failed to find exchange rate")
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves every rate ordered by currency pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_id, to_currency_id, rate, created_at, last_updated_at
		FROM exchange_rates
		ORDER BY from_currency_id, to_currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, "failed to query exchange rates")
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.ExchangeRateID,
			&rate.FromCurrencyID,
			&rate.ToCurrencyID,
			&rate.Rate,
			&rate.CreatedAt,
			&rate.LastUpdatedAt,
		)
		return rate, err
	})
	if err != nil {
		return nil, translateError(err, "failed to scan exchange rates")
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
