package services

import (
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Wallet = NewWalletService(repos.WalletRepo, repos.UserRepo, repos.CurrencyRepo)
	container.Transfer = NewTransferService(repos.WalletRepo, repos.ExchangeRateRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
