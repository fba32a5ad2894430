package domain

import (
	"fmt"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every balance and amount carries.
const MoneyScale int32 = 2

// RateScale is the number of fractional digits an exchange rate may carry.
const RateScale int32 = 8

var (
	// MoneyLimit is the exclusive upper bound for amounts and balances (NUMERIC(20,2)).
	MoneyLimit = decimal.New(1, 18)
	// RateLimit is the exclusive upper bound for exchange rates (NUMERIC(20,8)).
	RateLimit = decimal.New(1, 12)
)

// RoundMoney rounds d to MoneyScale digits, halves away from zero.
// For the non-negative amounts the ledger handles this is round-half-up.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// FormatMoney renders d with exactly MoneyScale fractional digits, e.g. "10.00".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}

// ValidateAmount checks that d is a positive amount representable at MoneyScale.
// Amounts with more precision are rejected rather than silently rounded.
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, d.String())
	}
	if !d.Equal(RoundMoney(d)) {
		return fmt.Errorf("%w: amount %s has more than %d fractional digits", apperrors.ErrValidation, d.String(), MoneyScale)
	}
	if d.GreaterThanOrEqual(MoneyLimit) {
		return fmt.Errorf("%w: amount %s must be below %s", apperrors.ErrValidation, d.String(), MoneyLimit.String())
	}
	return nil
}

// ValidateBalance checks that a resulting balance still fits the stored range.
func ValidateBalance(d decimal.Decimal) error {
	if d.GreaterThanOrEqual(MoneyLimit) {
		return fmt.Errorf("%w: balance would reach %s, limit is %s", apperrors.ErrValidation,
			FormatMoney(d), MoneyLimit.String())
	}
	return nil
}

// ValidateRate checks that a conversion rate is strictly positive and fits RateScale.
// Rates with more precision are rejected so every store keeps the exact value it was given.
func ValidateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if !rate.Equal(rate.Round(RateScale)) {
		return fmt.Errorf("%w: exchange rate %s has more than %d fractional digits", apperrors.ErrValidation, rate.String(), RateScale)
	}
	if rate.GreaterThanOrEqual(RateLimit) {
		return fmt.Errorf("%w: exchange rate %s must be below %s", apperrors.ErrValidation, rate.String(), RateLimit.String())
	}
	return nil
}

// Convert applies rate to amount and rounds the result to MoneyScale.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(rate))
}
