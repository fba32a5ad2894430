package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListUsers retrieves a page of users and the token for the following page, if any.
	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, *string, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user with a unique username.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
