package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository implements the user repository ports using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new PgxUserRepository.
func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts a new user and returns it with the generated ID.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, created_at, last_updated_at)
		VALUES ($1, $2, $3)
		RETURNING user_id;
	`
	err := r.Pool.QueryRow(ctx, query, modelUser.Username, modelUser.CreatedAt, modelUser.LastUpdatedAt).
		Scan(&modelUser.UserID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("username %q already taken", modelUser.Username))
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT user_id, username, created_at, last_updated_at
		FROM users
		WHERE user_id = $1;
	`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.CreatedAt,
		&modelUser.LastUpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("user %d not found", userID))
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// FindUsers retrieves up to limit users with an ID greater than afterID.
func (r *PgxUserRepository) FindUsers(ctx context.Context, afterID int64, limit int) ([]domain.User, error) {
	query := `
		SELECT user_id, username, created_at, last_updated_at
		FROM users
		WHERE user_id > $1
		ORDER BY user_id
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, translateError(err, "failed to query users")
	}
	defer rows.Close()

	modelUsers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		var user models.User
		err := row.Scan(&user.UserID, &user.Username, &user.CreatedAt, &user.LastUpdatedAt)
		return user, err
	})
	if err != nil {
		return nil, translateError(err, "failed to scan users")
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}
