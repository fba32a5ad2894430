package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingService_TotalBalancePerCurrency(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)

	totals := []domain.CurrencyTotal{
		{CurrencyID: 1, CurrencyName: "BTC", TotalBalance: decimal.RequireFromString("12.50")},
		{CurrencyID: 2, CurrencyName: "ETH", TotalBalance: decimal.RequireFromString("0.10")},
	}
	repo.On("GetTotalBalancePerCurrency", ctx).Return(totals, nil).Once()

	got, err := svc.TotalBalancePerCurrency(ctx)

	require.NoError(t, err)
	assert.Equal(t, totals, got)
	repo.AssertExpectations(t)
}

func TestReportingService_EmptyAndError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)

	var none []domain.CurrencyTotal
	repo.On("GetTotalBalancePerCurrency", ctx).Return(none, nil).Once()
	got, err := svc.TotalBalancePerCurrency(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	repo.On("GetTotalBalancePerCurrency", ctx).Return(nil, assert.AnError).Once()
	got, err = svc.TotalBalancePerCurrency(ctx)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, assert.AnError)
}
