package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
)

type walletService struct {
	BaseService
	walletRepo   portsrepo.WalletRepositoryFacade
	userRepo     portsrepo.UserReader
	currencyRepo portsrepo.CurrencyReader
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, userRepo portsrepo.UserReader, currencyRepo portsrepo.CurrencyReader) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo:   walletRepo,
		userRepo:     userRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// FundWallet credits amount to the user's wallet in the given currency. The wallet is created
// on first funding. Unknown users or currencies yield apperrors.ErrNotFound.
func (s *walletService) FundWallet(ctx context.Context, req dto.FundWalletRequest) (*domain.Wallet, error) {
	if req.UserID <= 0 || req.CryptocurrencyID <= 0 {
		return nil, fmt.Errorf("%w: user and cryptocurrency IDs must be positive", apperrors.ErrValidation)
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", req.UserID, err)
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CryptocurrencyID); err != nil {
		return nil, fmt.Errorf("failed to resolve cryptocurrency %d: %w", req.CryptocurrencyID, err)
	}

	key := domain.WalletKey{UserID: req.UserID, CurrencyID: req.CryptocurrencyID}
	wallet, err := s.walletRepo.CreditWallet(ctx, key, req.Amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to fund wallet",
			slog.Int64("user_id", req.UserID),
			slog.Int64("currency_id", req.CryptocurrencyID))
		return nil, fmt.Errorf("failed to fund wallet in service: %w", err)
	}

	s.LogInfo(ctx, "Wallet funded",
		slog.Int64("user_id", wallet.UserID),
		slog.Int64("currency_id", wallet.CurrencyID),
		slog.String("amount", domain.FormatMoney(req.Amount)),
		slog.String("balance", domain.FormatMoney(wallet.Balance)))
	return wallet, nil
}

func (s *walletService) GetWallet(ctx context.Context, userID, currencyID int64) (*domain.Wallet, error) {
	if userID <= 0 || currencyID <= 0 {
		return nil, fmt.Errorf("%w: user and currency IDs must be positive", apperrors.ErrValidation)
	}
	wallet, err := s.walletRepo.FindWallet(ctx, domain.WalletKey{UserID: userID, CurrencyID: currencyID})
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet in service: %w", err)
	}
	return wallet, nil
}

func (s *walletService) ListUserWallets(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}
	wallets, err := s.walletRepo.ListWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets in service: %w", err)
	}
	if wallets == nil {
		return []domain.Wallet{}, nil
	}
	return wallets, nil
}
