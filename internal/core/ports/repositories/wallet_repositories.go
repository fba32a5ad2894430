package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWallet retrieves the wallet for a user and currency, or apperrors.ErrNotFound.
	FindWallet(ctx context.Context, key domain.WalletKey) (*domain.Wallet, error)

	// ListWalletsByUser retrieves every wallet owned by a user ordered by currency ID.
	ListWalletsByUser(ctx context.Context, userID int64) ([]domain.Wallet, error)
}

// WalletWriter defines balance mutations. Each call is atomic on its own.
type WalletWriter interface {
	// GetOrCreateWallet returns the wallet for key, creating it with a zero balance when absent.
	GetOrCreateWallet(ctx context.Context, key domain.WalletKey) (*domain.Wallet, error)

	// CreditWallet adds amount to the wallet, creating it when absent.
	CreditWallet(ctx context.Context, key domain.WalletKey, amount decimal.Decimal) (*domain.Wallet, error)

	// DebitWallet subtracts amount from the wallet. An absent wallet or a balance below amount
	// yields apperrors.ErrInsufficientBalance and leaves the balance untouched.
	DebitWallet(ctx context.Context, key domain.WalletKey, amount decimal.Decimal) (*domain.Wallet, error)
}

// WalletTransferSupport defines the compare-and-apply primitive used by the transfer engine.
type WalletTransferSupport interface {
	// TransferAtomic checks the source balance and applies the debit and the credit as one unit.
	// Concurrent calls touching the same wallets are serialized by the store.
	TransferAtomic(ctx context.Context, mutation domain.TransferMutation) (*domain.TransferOutcome, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	WalletTransferSupport
}
