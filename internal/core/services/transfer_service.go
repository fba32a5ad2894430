package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// transferService is the transfer engine. It owns validation, rate resolution and conversion;
// the wallet store owns the atomic balance check and mutation.
type transferService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
	rateRepo   portsrepo.ExchangeRateReader
}

// NewTransferService creates the transfer engine over a wallet store and a rate table.
func NewTransferService(walletRepo portsrepo.WalletRepositoryFacade, rateRepo portsrepo.ExchangeRateReader) portssvc.TransferSvc {
	return &transferService{
		walletRepo: walletRepo,
		rateRepo:   rateRepo,
	}
}

var _ portssvc.TransferSvc = (*transferService)(nil)

func (s *transferService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.TransferResult, error) {
	if err := validateTransferRequest(req); err != nil {
		return nil, err
	}

	source := domain.WalletKey{UserID: req.FromUserID, CurrencyID: req.FromCurrencyID}
	destination := domain.WalletKey{UserID: req.ToUserID, CurrencyID: req.ToCurrencyID}
	logAttrs := []any{
		slog.Int64("from_user_id", req.FromUserID),
		slog.Int64("to_user_id", req.ToUserID),
		slog.Int64("from_currency_id", req.FromCurrencyID),
		slog.Int64("to_currency_id", req.ToCurrencyID),
		slog.String("amount", domain.FormatMoney(req.Amount)),
	}

	// Fail fast on an obviously short source. The store re-checks under lock.
	if err := s.checkSourceBalance(ctx, source, req.Amount); err != nil {
		s.LogWarn(ctx, err, "Transfer rejected", logAttrs...)
		return nil, err
	}

	rate, received, err := s.resolveConversion(ctx, req)
	if err != nil {
		s.LogWarn(ctx, err, "Transfer rejected", logAttrs...)
		return nil, err
	}

	outcome, err := s.walletRepo.TransferAtomic(ctx, domain.TransferMutation{
		Source:       source,
		Destination:  destination,
		DebitAmount:  req.Amount,
		CreditAmount: received,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.LogWarn(ctx, err, "Transfer rejected", logAttrs...)
		} else {
			s.LogError(ctx, err, "Transfer failed", logAttrs...)
		}
		return nil, fmt.Errorf("failed to apply transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer completed", append(logAttrs,
		slog.String("rate", rate.String()),
		slog.String("received_amount", domain.FormatMoney(received)))...)

	return &domain.TransferResult{
		ReceivedAmount: received,
		Rate:           rate,
		FromWallet:     outcome.FromWallet,
		ToWallet:       outcome.ToWallet,
	}, nil
}

func validateTransferRequest(req dto.TransferRequest) error {
	if req.FromUserID <= 0 || req.ToUserID <= 0 {
		return fmt.Errorf("%w: user IDs must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyID <= 0 || req.ToCurrencyID <= 0 {
		return fmt.Errorf("%w: currency IDs must be positive", apperrors.ErrValidation)
	}
	return domain.ValidateAmount(req.Amount)
}

func (s *transferService) checkSourceBalance(ctx context.Context, source domain.WalletKey, amount decimal.Decimal) error {
	wallet, err := s.walletRepo.FindWallet(ctx, source)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %d has no wallet in currency %d", apperrors.ErrInsufficientBalance, source.UserID, source.CurrencyID)
		}
		return fmt.Errorf("failed to resolve source wallet: %w", err)
	}
	if wallet.Balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s is below %s", apperrors.ErrInsufficientBalance,
			domain.FormatMoney(wallet.Balance), domain.FormatMoney(amount))
	}
	return nil
}

// resolveConversion returns the applied rate and the amount the destination receives.
// Same-currency transfers use a rate of one without consulting the rate table.
func (s *transferService) resolveConversion(ctx context.Context, req dto.TransferRequest) (decimal.Decimal, decimal.Decimal, error) {
	if req.FromCurrencyID == req.ToCurrencyID {
		return decimal.NewFromInt(1), req.Amount, nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, req.FromCurrencyID, req.ToCurrencyID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to resolve exchange rate: %w", err)
	}

	received := domain.Convert(req.Amount, rate.Rate)
	if !received.IsPositive() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: converted amount rounds to zero", apperrors.ErrValidation)
	}
	if err := domain.ValidateBalance(received); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return rate.Rate, received, nil
}
