package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates that a debit exceeds the funds available in a wallet,
// or that the wallet to debit does not exist.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrRateNotFound indicates that no exchange rate exists for an ordered currency pair.
// It matches ErrNotFound under errors.Is.
var ErrRateNotFound = fmt.Errorf("exchange rate %w", ErrNotFound)

// ErrStorage indicates a failure in the underlying persistence layer.
var ErrStorage = errors.New("storage failure")

// AppError carries a status code and a human readable message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(message string) error {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) error {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewStorageError returns an error matching ErrStorage that still exposes cause to errors.Is/As.
func NewStorageError(message string, cause error) error {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrStorage, cause))
}

// HTTPStatus maps an error onto the response status used by the API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
