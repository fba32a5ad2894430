package pgsql

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTotalBalancePerCurrency sums wallet balances per cryptocurrency.
func (r *reportingRepository) GetTotalBalancePerCurrency(ctx context.Context) ([]domain.CurrencyTotal, error) {
	query := `
		SELECT
			c.currency_id,
			c.name,
			SUM(w.balance) AS total_balance
		FROM wallets w
		JOIN cryptocurrencies c ON w.currency_id = c.currency_id
		GROUP BY c.currency_id, c.name
		ORDER BY c.currency_id
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, "error querying total balances")
	}
	defer rows.Close()

	var result []models.CurrencyTotal
	for rows.Next() {
		var row models.CurrencyTotal
		if err := rows.Scan(&row.CurrencyID, &row.CurrencyName, &row.TotalBalance); err != nil {
			return nil, translateError(err, "error scanning total balance row")
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError(err, "error iterating total balance rows")
	}

	return mapping.ToDomainCurrencyTotalSlice(result), nil
}
