package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for cryptocurrency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new cryptocurrency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Cryptocurrency) (*domain.Cryptocurrency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO cryptocurrencies (name, created_at, last_updated_at)
		VALUES ($1, $2, $3)
		RETURNING currency_id;
	`
	err := r.Pool.QueryRow(ctx, query, modelCurr.Name, modelCurr.CreatedAt, modelCurr.LastUpdatedAt).
		Scan(&modelCurr.CurrencyID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("cryptocurrency %q already exists", modelCurr.Name))
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a cryptocurrency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Cryptocurrency, error) {
	query := `
		SELECT currency_id, name, created_at, last_updated_at
		FROM cryptocurrencies
		WHERE currency_id = $1;
	`
	var modelCurr models.Cryptocurrency
	err := r.Pool.QueryRow(ctx, query, currencyID).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Name,
		&modelCurr.CreatedAt,
		&modelCurr.LastUpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("cryptocurrency %d not found", currencyID))
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all cryptocurrencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Cryptocurrency, error) {
	query := `
		SELECT currency_id, name, created_at, last_updated_at
		FROM cryptocurrencies
		ORDER BY currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, "failed to query cryptocurrencies")
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Cryptocurrency, error) {
		var currency models.Cryptocurrency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Name,
			&currency.CreatedAt,
			&currency.LastUpdatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, translateError(err, "failed to scan cryptocurrencies")
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
