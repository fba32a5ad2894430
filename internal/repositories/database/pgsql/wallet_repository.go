package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
	"github.com/SscSPs/crypto_wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const walletColumns = `wallet_id, user_id, currency_id, balance, created_at, last_updated_at`

// PgxWalletRepository implements the wallet store on postgres. Every mutation is a single
// statement or a single transaction holding row locks on the wallets it touches.
type PgxWalletRepository struct {
	BaseRepository
	maxRetries int
}

// newPgxWalletRepository creates a new PgxWalletRepository.
func newPgxWalletRepository(pool *pgxpool.Pool, maxRetries int) *PgxWalletRepository {
	if maxRetries < 0 {
		maxRetries = defaultMaxTxRetries
	}
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
		maxRetries:     maxRetries,
	}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(&w.WalletID, &w.UserID, &w.CurrencyID, &w.Balance, &w.CreatedAt, &w.LastUpdatedAt)
	return w, err
}

// FindWallet retrieves the wallet for a user and currency.
func (r *PgxWalletRepository) FindWallet(ctx context.Context, key domain.WalletKey) (*domain.Wallet, error) {
	return findWallet(ctx, r.Pool, key, false)
}

func findWallet(ctx context.Context, q querier, key domain.WalletKey, forUpdate bool) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 AND currency_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	modelWallet, err := scanWallet(q.QueryRow(ctx, query, key.UserID, key.CurrencyID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("wallet for user %d in currency %d not found", key.UserID, key.CurrencyID))
	}

	domainWallet := mapping.ToDomainWallet(modelWallet)
	return &domainWallet, nil
}

// ListWalletsByUser retrieves every wallet of a user ordered by currency.
func (r *PgxWalletRepository) ListWalletsByUser(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY currency_id`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err, "failed to query wallets")
	}
	defer rows.Close()

	modelWallets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Wallet, error) {
		return scanWallet(row)
	})
	if err != nil {
		return nil, translateError(err, "failed to scan wallets")
	}

	return mapping.ToDomainWalletSlice(modelWallets), nil
}

// GetOrCreateWallet returns the wallet for key, inserting a zero-balance row when absent.
func (r *PgxWalletRepository) GetOrCreateWallet(ctx context.Context, key domain.WalletKey) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := r.WithTx(ctx, r.maxRetries, func(tx pgx.Tx) error {
		var err error
		wallet, err = lockOrCreateWallet(ctx, tx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func lockOrCreateWallet(ctx context.Context, tx pgx.Tx, key domain.WalletKey) (*domain.Wallet, error) {
	now := time.Now().UTC()
	_, err := tx.Exec(ctx, `
		INSERT INTO wallets (user_id, currency_id, balance, created_at, last_updated_at)
		VALUES ($1, $2, 0, $3, $3)
		ON CONFLICT (user_id, currency_id) DO NOTHING`,
		key.UserID, key.CurrencyID, now,
	)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to create wallet for user %d in currency %d", key.UserID, key.CurrencyID))
	}
	return findWallet(ctx, tx, key, true)
}

// CreditWallet adds amount to a wallet in a single upsert statement.
func (r *PgxWalletRepository) CreditWallet(ctx context.Context, key domain.WalletKey, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("credit amount must be positive")
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO wallets (user_id, currency_id, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, currency_id) DO UPDATE SET
			balance = wallets.balance + EXCLUDED.balance,
			last_updated_at = EXCLUDED.last_updated_at
		RETURNING ` + walletColumns

	modelWallet, err := scanWallet(r.Pool.QueryRow(ctx, query, key.UserID, key.CurrencyID, domain.RoundMoney(amount), now))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to credit wallet for user %d in currency %d", key.UserID, key.CurrencyID))
	}

	domainWallet := mapping.ToDomainWallet(modelWallet)
	return &domainWallet, nil
}

// DebitWallet subtracts amount from a wallet only when the balance covers it.
func (r *PgxWalletRepository) DebitWallet(ctx context.Context, key domain.WalletKey, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("debit amount must be positive")
	}

	query := `
		UPDATE wallets
		SET balance = balance - $3, last_updated_at = $4
		WHERE user_id = $1 AND currency_id = $2 AND balance >= $3
		RETURNING ` + walletColumns

	modelWallet, err := scanWallet(r.Pool.QueryRow(ctx, query, key.UserID, key.CurrencyID, domain.RoundMoney(amount), time.Now().UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet for user %d in currency %d cannot cover %s",
				apperrors.ErrInsufficientBalance, key.UserID, key.CurrencyID, domain.FormatMoney(amount))
		}
		return nil, translateError(err, "failed to debit wallet")
	}

	domainWallet := mapping.ToDomainWallet(modelWallet)
	return &domainWallet, nil
}

// TransferAtomic debits the source and credits the destination in one transaction.
// Rows are locked in (user, currency) order so concurrent transfers over the same pair of
// wallets cannot deadlock. The destination row is created when missing.
func (r *PgxWalletRepository) TransferAtomic(ctx context.Context, mutation domain.TransferMutation) (*domain.TransferOutcome, error) {
	if !mutation.DebitAmount.IsPositive() || !mutation.CreditAmount.IsPositive() {
		return nil, apperrors.NewValidationError("transfer amounts must be positive")
	}

	var outcome *domain.TransferOutcome
	err := r.WithTx(ctx, r.maxRetries, func(tx pgx.Tx) error {
		var err error
		outcome, err = transferInTx(ctx, tx, mutation)
		return err
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func transferInTx(ctx context.Context, tx pgx.Tx, m domain.TransferMutation) (*domain.TransferOutcome, error) {
	keys := []domain.WalletKey{m.Source}
	if m.Destination != m.Source {
		keys = append(keys, m.Destination)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	for _, key := range keys {
		if key == m.Source {
			source, err := findWallet(ctx, tx, key, true)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: user %d has no wallet in currency %d",
						apperrors.ErrInsufficientBalance, key.UserID, key.CurrencyID)
				}
				return nil, err
			}
			if source.Balance.LessThan(m.DebitAmount) {
				return nil, fmt.Errorf("%w: balance %s is below %s", apperrors.ErrInsufficientBalance,
					domain.FormatMoney(source.Balance), domain.FormatMoney(m.DebitAmount))
			}
			continue
		}
		if _, err := lockOrCreateWallet(ctx, tx, key); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if err := applyDelta(ctx, tx, m.Source, m.DebitAmount.Neg(), now); err != nil {
		return nil, err
	}
	if err := applyDelta(ctx, tx, m.Destination, m.CreditAmount, now); err != nil {
		return nil, err
	}

	from, err := findWallet(ctx, tx, m.Source, false)
	if err != nil {
		return nil, err
	}
	to, err := findWallet(ctx, tx, m.Destination, false)
	if err != nil {
		return nil, err
	}
	return &domain.TransferOutcome{FromWallet: *from, ToWallet: *to}, nil
}

func applyDelta(ctx context.Context, tx pgx.Tx, key domain.WalletKey, delta decimal.Decimal, now time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE wallets
		SET balance = balance + $3, last_updated_at = $4
		WHERE user_id = $1 AND currency_id = $2`,
		key.UserID, key.CurrencyID, domain.RoundMoney(delta), now,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update wallet for user %d in currency %d", key.UserID, key.CurrencyID))
	}
	return nil
}
