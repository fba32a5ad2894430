package pgsql

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const initMigration = "../../../../migrations/000001_init.up.sql"

// PgsqlIntegrationSuite runs against a real database when TEST_PGSQL_URL is set.
type PgsqlIntegrationSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
	ctx   context.Context
}

func TestPgsqlIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_PGSQL_URL") == "" {
		t.Skip("TEST_PGSQL_URL not set")
	}
	suite.Run(t, new(PgsqlIntegrationSuite))
}

func (s *PgsqlIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	pool, err := pgxpool.New(s.ctx, os.Getenv("TEST_PGSQL_URL"))
	s.Require().NoError(err)
	s.pool = pool

	schema, err := os.ReadFile(initMigration)
	s.Require().NoError(err)
	_, err = s.pool.Exec(s.ctx, string(schema))
	s.Require().NoError(err)

	s.repos = NewRepositoryProvider(pool, 5)
}

func (s *PgsqlIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PgsqlIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE exchange_rates, wallets, cryptocurrencies, users RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *PgsqlIntegrationSuite) seedUser(name string) int64 {
	u, err := s.repos.UserRepo.SaveUser(s.ctx, domain.User{Username: name, AuditFields: auditNow()})
	s.Require().NoError(err)
	return u.UserID
}

func (s *PgsqlIntegrationSuite) seedCurrency(name string) int64 {
	c, err := s.repos.CurrencyRepo.SaveCurrency(s.ctx, domain.Cryptocurrency{Name: name, AuditFields: auditNow()})
	s.Require().NoError(err)
	return c.CurrencyID
}

func auditNow() domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
}

func (s *PgsqlIntegrationSuite) TestDuplicateUsername() {
	s.seedUser("alice")
	_, err := s.repos.UserRepo.SaveUser(s.ctx, domain.User{Username: "alice", AuditFields: auditNow()})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *PgsqlIntegrationSuite) TestExchangeRateLookupIsDirected() {
	btc := s.seedCurrency("BTC")
	eth := s.seedCurrency("ETH")
	_, err := s.repos.ExchangeRateRepo.SaveExchangeRate(s.ctx, domain.ExchangeRate{
		FromCurrencyID: btc, ToCurrencyID: eth, Rate: decimal.RequireFromString("15.5"), AuditFields: auditNow(),
	})
	s.Require().NoError(err)

	rate, err := s.repos.ExchangeRateRepo.FindExchangeRate(s.ctx, btc, eth)
	s.Require().NoError(err)
	s.True(rate.Rate.Equal(decimal.RequireFromString("15.5")))

	_, err = s.repos.ExchangeRateRepo.FindExchangeRate(s.ctx, eth, btc)
	s.ErrorIs(err, apperrors.ErrRateNotFound)

	_, err = s.repos.ExchangeRateRepo.SaveExchangeRate(s.ctx, domain.ExchangeRate{
		FromCurrencyID: btc, ToCurrencyID: eth, Rate: decimal.NewFromInt(2), AuditFields: auditNow(),
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *PgsqlIntegrationSuite) TestCreditDebitAndTransfer() {
	alice := s.seedUser("alice")
	bob := s.seedUser("bob")
	btc := s.seedCurrency("BTC")
	eth := s.seedCurrency("ETH")

	src := domain.WalletKey{UserID: alice, CurrencyID: btc}
	dst := domain.WalletKey{UserID: bob, CurrencyID: eth}

	w, err := s.repos.WalletRepo.CreditWallet(s.ctx, src, decimal.NewFromInt(10))
	s.Require().NoError(err)
	s.Equal("10.00", domain.FormatMoney(w.Balance))

	_, err = s.repos.WalletRepo.DebitWallet(s.ctx, src, decimal.NewFromInt(11))
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)

	outcome, err := s.repos.WalletRepo.TransferAtomic(s.ctx, domain.TransferMutation{
		Source: src, Destination: dst,
		DebitAmount: decimal.NewFromInt(4), CreditAmount: decimal.RequireFromString("62.00"),
	})
	s.Require().NoError(err)
	s.Equal("6.00", domain.FormatMoney(outcome.FromWallet.Balance))
	s.Equal("62.00", domain.FormatMoney(outcome.ToWallet.Balance))

	_, err = s.repos.WalletRepo.TransferAtomic(s.ctx, domain.TransferMutation{
		Source: domain.WalletKey{UserID: alice, CurrencyID: btc}, Destination: domain.WalletKey{UserID: 999, CurrencyID: btc},
		DebitAmount: decimal.NewFromInt(1), CreditAmount: decimal.NewFromInt(1),
	})
	s.ErrorIs(err, apperrors.ErrNotFound)

	after, err := s.repos.WalletRepo.FindWallet(s.ctx, src)
	s.Require().NoError(err)
	s.Equal("6.00", domain.FormatMoney(after.Balance))

	totals, err := s.repos.ReportingRepo.GetTotalBalancePerCurrency(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(totals, 2)
	s.Equal("BTC", totals[0].CurrencyName)
	s.Equal("6.00", domain.FormatMoney(totals[0].TotalBalance))
}

func (s *PgsqlIntegrationSuite) TestConcurrentTransfersNeverOverdraw() {
	alice := s.seedUser("alice")
	bob := s.seedUser("bob")
	btc := s.seedCurrency("BTC")
	src := domain.WalletKey{UserID: alice, CurrencyID: btc}
	dst := domain.WalletKey{UserID: bob, CurrencyID: btc}

	const workers = 10
	amount := decimal.NewFromInt(5)
	_, err := s.repos.WalletRepo.CreditWallet(s.ctx, src, amount.Mul(decimal.NewFromInt(workers-1)))
	s.Require().NoError(err)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repos.WalletRepo.TransferAtomic(s.ctx, domain.TransferMutation{
				Source: src, Destination: dst, DebitAmount: amount, CreditAmount: amount,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, short int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			short++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(workers-1, ok)
	s.Equal(1, short)

	from, err := s.repos.WalletRepo.FindWallet(s.ctx, src)
	s.Require().NoError(err)
	s.True(from.Balance.IsZero())
}
