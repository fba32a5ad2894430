package domain_test

import (
	"testing"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"whole rate", "5", "2.00", "10.00"},
		{"rounds half up", "0.05", "0.5", "0.03"},
		{"rounds down below half", "1.00", "0.333", "0.33"},
		{"rounds up above half", "2.00", "0.3333", "0.67"},
		{"fractional rate", "12.34", "1.23456789", "15.23"},
		{"identity", "7.77", "1", "7.77"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Convert(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.want, domain.FormatMoney(got))
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"positive whole", "20", false},
		{"two decimals", "0.01", false},
		{"trailing zeros beyond scale", "1.500", false},
		{"zero", "0", true},
		{"negative", "-3.00", true},
		{"too precise", "1.005", true},
		{"largest representable", "999999999999999999.99", false},
		{"at column limit", "1000000000000000000", true},
		{"far beyond column limit", "1e24", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"smallest step", "0.00000001", false},
		{"eight decimals", "1.23456789", false},
		{"trailing zeros beyond scale", "2.000000000", false},
		{"largest representable", "999999999999.99999999", false},
		{"zero", "0", true},
		{"negative", "-2", true},
		{"nine decimals", "0.123456789", true},
		{"at column limit", "1000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateRate(decimal.RequireFromString(tt.rate))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBalance(t *testing.T) {
	assert.NoError(t, domain.ValidateBalance(decimal.Zero))
	assert.NoError(t, domain.ValidateBalance(decimal.RequireFromString("999999999999999999.99")))
	assert.ErrorIs(t, domain.ValidateBalance(decimal.New(1, 18)), apperrors.ErrValidation)
}

func TestWalletKeyLess(t *testing.T) {
	a := domain.WalletKey{UserID: 1, CurrencyID: 2}
	b := domain.WalletKey{UserID: 1, CurrencyID: 3}
	c := domain.WalletKey{UserID: 2, CurrencyID: 1}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.False(t, a.Less(a))
}
