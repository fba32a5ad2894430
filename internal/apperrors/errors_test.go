package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{"insufficient balance", fmt.Errorf("transfer: %w", apperrors.ErrInsufficientBalance), http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("user 7 not found"), http.StatusNotFound},
		{"rate not found", fmt.Errorf("lookup: %w", apperrors.ErrRateNotFound), http.StatusNotFound},
		{"duplicate", fmt.Errorf("%w: username taken", apperrors.ErrDuplicate), http.StatusConflict},
		{"storage", apperrors.NewStorageError("commit failed", errors.New("conn reset")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestRateNotFoundIsNotFound(t *testing.T) {
	assert.ErrorIs(t, apperrors.ErrRateNotFound, apperrors.ErrNotFound)
	assert.NotErrorIs(t, apperrors.ErrNotFound, apperrors.ErrRateNotFound)
}

func TestStorageErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewStorageError("failed to begin transaction", cause)

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to begin transaction")

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
