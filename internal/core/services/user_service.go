package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/pagination"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	defaultPageSize   = 20
	maxPageSize       = 100
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return nil, fmt.Errorf("%w: username must be between %d and %d characters", apperrors.ErrValidation, minUsernameLength, maxUsernameLength)
	}

	now := time.Now().UTC()
	user := domain.User{
		Username: username,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to create user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.Int64("user_id", created.UserID))
	return created, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidation)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var afterID int64
	if params.NextToken != "" {
		id, err := pagination.DecodeIDToken(params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		afterID = id
	}

	// Fetch one extra row to learn whether another page exists.
	users, err := s.userRepo.FindUsers(ctx, afterID, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, nil, fmt.Errorf("failed to list users in service: %w", err)
	}

	var nextToken *string
	if len(users) > limit {
		users = users[:limit]
		token := pagination.EncodeIDToken(users[len(users)-1].UserID)
		nextToken = &token
	}
	return users, nextToken, nil
}
