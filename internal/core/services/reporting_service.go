package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TotalBalancePerCurrency sums wallet balances per currency. The result is a point-in-time
// reporting view, not a ledger authority.
func (s *reportingService) TotalBalancePerCurrency(ctx context.Context) ([]domain.CurrencyTotal, error) {
	totals, err := s.reportingRepo.GetTotalBalancePerCurrency(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve total balances")
		return nil, fmt.Errorf("failed to retrieve total balances: %w", err)
	}
	if totals == nil {
		totals = []domain.CurrencyTotal{}
	}

	s.LogInfo(ctx, "Total balance report generated", slog.Int("row_count", len(totals)))
	return totals, nil
}
