package pgsql

import (
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres repository onto a shared pool.
// maxTxRetries bounds how often a conflicting wallet transaction is restarted.
func NewRepositoryProvider(dbPool *pgxpool.Pool, maxTxRetries int) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		WalletRepo:       newPgxWalletRepository(dbPool, maxTxRetries),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
