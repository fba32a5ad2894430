package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
)

// exchangeRateService provides business logic for the rate table.
type exchangeRateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new directed exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if req.FromCurrencyID <= 0 || req.ToCurrencyID <= 0 {
		return nil, fmt.Errorf("%w: currency IDs must be positive", apperrors.ErrValidation)
	}
	if err := domain.ValidateRate(req.Rate); err != nil {
		return nil, err
	}
	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}

	if err := s.ensureCurrencyExists(ctx, req.FromCurrencyID, "from"); err != nil {
		return nil, err
	}
	if err := s.ensureCurrencyExists(ctx, req.ToCurrencyID, "to"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to create exchange rate",
			slog.Int64("from_currency_id", req.FromCurrencyID),
			slog.Int64("to_currency_id", req.ToCurrencyID))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.Int64("exchange_rate_id", created.ExchangeRateID),
		slog.String("rate", created.Rate.String()))
	return created, nil
}

func (s *exchangeRateService) ensureCurrencyExists(ctx context.Context, currencyID int64, side string) error {
	if _, err := s.currencyService.GetCurrencyByID(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: '%s' currency %d not found", apperrors.ErrValidation, side, currencyID)
		}
		return fmt.Errorf("failed to validate '%s' currency %d: %w", side, currencyID, err)
	}
	return nil
}

// GetExchangeRate retrieves the directed rate for a currency pair.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	if fromCurrencyID <= 0 || toCurrencyID <= 0 {
		return nil, fmt.Errorf("%w: currency IDs must be positive", apperrors.ErrValidation)
	}
	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCurrencyID, toCurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
