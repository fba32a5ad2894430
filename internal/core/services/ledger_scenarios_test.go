package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLedger wires the full service container over an in-memory store with users
// 1 (x) and 2 (y), currencies 1 (A) and 2 (B), and rate A->B = 2.00.
func newLedger(t *testing.T) *portssvc.ServiceContainer {
	t.Helper()
	ctx := context.Background()
	svc := services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))

	for _, name := range []string{"xavier", "yasmin"} {
		_, err := svc.User.CreateUser(ctx, dto.CreateUserRequest{Username: name})
		require.NoError(t, err)
	}
	for _, name := range []string{"AAA", "BBB"} {
		_, err := svc.Currency.CreateCurrency(ctx, dto.CreateCurrencyRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := svc.ExchangeRate.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
		FromCurrencyID: 1, ToCurrencyID: 2, Rate: decimal.RequireFromString("2.00"),
	})
	require.NoError(t, err)
	return svc
}

func fund(t *testing.T, svc *portssvc.ServiceContainer, userID, currencyID int64, amount string) {
	t.Helper()
	_, err := svc.Wallet.FundWallet(context.Background(), dto.FundWalletRequest{
		UserID: userID, CryptocurrencyID: currencyID, Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
}

func balance(t *testing.T, svc *portssvc.ServiceContainer, userID, currencyID int64) string {
	t.Helper()
	w, err := svc.Wallet.GetWallet(context.Background(), userID, currencyID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "absent"
	}
	require.NoError(t, err)
	return domain.FormatMoney(w.Balance)
}

func TestLedger_FundCreatesWallet(t *testing.T) {
	svc := newLedger(t)

	w, err := svc.Wallet.FundWallet(context.Background(), dto.FundWalletRequest{
		UserID: 1, CryptocurrencyID: 2, Amount: decimal.NewFromInt(20),
	})

	require.NoError(t, err)
	assert.Equal(t, "20.00", domain.FormatMoney(w.Balance))
	assert.Equal(t, "20.00", balance(t, svc, 1, 2))
}

func TestLedger_CrossCurrencyTransfer(t *testing.T) {
	svc := newLedger(t)
	fund(t, svc, 1, 1, "10.00")

	res, err := svc.Transfer.Transfer(context.Background(), dto.TransferRequest{
		FromUserID: 1, ToUserID: 2, FromCurrencyID: 1, ToCurrencyID: 2, Amount: decimal.NewFromInt(5),
	})

	require.NoError(t, err)
	assert.Equal(t, "10.00", domain.FormatMoney(res.ReceivedAmount))
	assert.Equal(t, "5.00", balance(t, svc, 1, 1))
	assert.Equal(t, "10.00", balance(t, svc, 2, 2))
}

func TestLedger_InsufficientBalanceChangesNothing(t *testing.T) {
	svc := newLedger(t)
	fund(t, svc, 1, 1, "3.00")

	_, err := svc.Transfer.Transfer(context.Background(), dto.TransferRequest{
		FromUserID: 1, ToUserID: 2, FromCurrencyID: 1, ToCurrencyID: 1, Amount: decimal.NewFromInt(5),
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	assert.Equal(t, "3.00", balance(t, svc, 1, 1))
	assert.Equal(t, "absent", balance(t, svc, 2, 1))
}

func TestLedger_MissingRateChangesNothing(t *testing.T) {
	svc := newLedger(t)
	fund(t, svc, 2, 2, "8.00")

	_, err := svc.Transfer.Transfer(context.Background(), dto.TransferRequest{
		FromUserID: 2, ToUserID: 1, FromCurrencyID: 2, ToCurrencyID: 1, Amount: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	assert.Equal(t, "8.00", balance(t, svc, 2, 2))
	assert.Equal(t, "absent", balance(t, svc, 1, 1))
}

func TestLedger_UnknownDestinationUser(t *testing.T) {
	svc := newLedger(t)
	fund(t, svc, 1, 1, "4.00")

	_, err := svc.Transfer.Transfer(context.Background(), dto.TransferRequest{
		FromUserID: 1, ToUserID: 42, FromCurrencyID: 1, ToCurrencyID: 1, Amount: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "4.00", balance(t, svc, 1, 1))
}

func TestLedger_ConcurrentTransfersNeverOverdraw(t *testing.T) {
	const n = 25
	svc := newLedger(t)
	fund(t, svc, 1, 1, decimal.NewFromInt(n-1).StringFixed(2))

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		successes    int
		insufficient int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer.Transfer(context.Background(), dto.TransferRequest{
				FromUserID: 1, ToUserID: 2, FromCurrencyID: 1, ToCurrencyID: 1, Amount: decimal.NewFromInt(1),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, apperrors.ErrInsufficientBalance):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n-1, successes)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, "0.00", balance(t, svc, 1, 1))
	assert.Equal(t, decimal.NewFromInt(n-1).StringFixed(2), balance(t, svc, 2, 1))

	totals, err := svc.Reporting.TotalBalancePerCurrency(context.Background())
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "AAA", totals[0].CurrencyName)
	assert.Equal(t, decimal.NewFromInt(n-1).StringFixed(2), domain.FormatMoney(totals[0].TotalBalance))
}
