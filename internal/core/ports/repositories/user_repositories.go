package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUsers retrieves up to limit users with an ID greater than afterID, ordered by ID.
	FindUsers(ctx context.Context, afterID int64, limit int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns it with its assigned ID.
	// A taken username yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
