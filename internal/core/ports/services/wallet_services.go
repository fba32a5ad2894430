package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetWallet retrieves the wallet a user holds in a currency.
	GetWallet(ctx context.Context, userID, currencyID int64) (*domain.Wallet, error)

	// ListUserWallets retrieves every wallet a user holds.
	ListUserWallets(ctx context.Context, userID int64) ([]domain.Wallet, error)
}

// WalletWriterSvc defines write operations for wallet data
type WalletWriterSvc interface {
	// FundWallet credits a wallet, creating it on first funding.
	FundWallet(ctx context.Context, req dto.FundWalletRequest) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}

// TransferSvc moves value between wallets.
type TransferSvc interface {
	// Transfer debits the source wallet, converts through the rate table when the currencies
	// differ and credits the destination wallet, all or nothing.
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.TransferResult, error)
}
