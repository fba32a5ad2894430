package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new cryptocurrency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Cryptocurrency, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: currency name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	currency := domain.Cryptocurrency{
		Name: name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to create currency", slog.String("name", name))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.Int64("currency_id", created.CurrencyID), slog.String("name", created.Name))
	return created, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Cryptocurrency, error) {
	if currencyID <= 0 {
		return nil, fmt.Errorf("%w: currency ID must be positive", apperrors.ErrValidation)
	}
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by ID in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Cryptocurrency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Cryptocurrency{}, nil
	}
	return currencies, nil
}
