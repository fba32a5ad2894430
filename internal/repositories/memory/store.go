// Package memory provides an in-process implementation of every repository port.
// All state lives behind a single mutex so each operation observes and mutates a
// consistent snapshot.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type ratePair struct {
	from, to int64
}

// Store is a mutex guarded ledger.
type Store struct {
	mu sync.Mutex

	users      map[int64]domain.User
	usernames  map[string]int64
	currencies map[int64]domain.Cryptocurrency
	names      map[string]int64
	rates      map[ratePair]domain.ExchangeRate
	wallets    map[domain.WalletKey]domain.Wallet

	nextUserID     int64
	nextCurrencyID int64
	nextRateID     int64
	nextWalletID   int64

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:      make(map[int64]domain.User),
		usernames:  make(map[string]int64),
		currencies: make(map[int64]domain.Cryptocurrency),
		names:      make(map[string]int64),
		rates:      make(map[ratePair]domain.ExchangeRate),
		wallets:    make(map[domain.WalletKey]domain.Wallet),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewRepositoryProvider exposes a single store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         store,
		CurrencyRepo:     store,
		ExchangeRateRepo: store,
		WalletRepo:       store,
		ReportingRepo:    store,
	}
}

var (
	_ portsrepo.UserRepositoryFacade         = (*Store)(nil)
	_ portsrepo.CurrencyRepositoryFacade     = (*Store)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade = (*Store)(nil)
	_ portsrepo.WalletRepositoryFacade       = (*Store)(nil)
	_ portsrepo.ReportingRepository          = (*Store)(nil)
)

// --- users ---

func (s *Store) SaveUser(_ context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return nil, fmt.Errorf("%w: username %q already taken", apperrors.ErrDuplicate, user.Username)
	}
	s.nextUserID++
	user.UserID = s.nextUserID
	s.users[user.UserID] = user
	s.usernames[user.Username] = user.UserID
	return &user, nil
}

func (s *Store) FindUserByID(_ context.Context, userID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %d not found", apperrors.ErrNotFound, userID)
	}
	return &user, nil
}

func (s *Store) FindUsers(_ context.Context, afterID int64, limit int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.users))
	for id, u := range s.users {
		if id > afterID {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// --- cryptocurrencies ---

func (s *Store) SaveCurrency(_ context.Context, currency domain.Cryptocurrency) (*domain.Cryptocurrency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.names[currency.Name]; taken {
		return nil, fmt.Errorf("%w: cryptocurrency %q already exists", apperrors.ErrDuplicate, currency.Name)
	}
	s.nextCurrencyID++
	currency.CurrencyID = s.nextCurrencyID
	s.currencies[currency.CurrencyID] = currency
	s.names[currency.Name] = currency.CurrencyID
	return &currency, nil
}

func (s *Store) FindCurrencyByID(_ context.Context, currencyID int64) (*domain.Cryptocurrency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency, ok := s.currencies[currencyID]
	if !ok {
		return nil, fmt.Errorf("%w: cryptocurrency %d not found", apperrors.ErrNotFound, currencyID)
	}
	return &currency, nil
}

func (s *Store) ListCurrencies(_ context.Context) ([]domain.Cryptocurrency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currencies := make([]domain.Cryptocurrency, 0, len(s.currencies))
	for _, c := range s.currencies {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].CurrencyID < currencies[j].CurrencyID })
	return currencies, nil
}

// --- exchange rates ---

func (s *Store) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rate.FromCurrencyID == rate.ToCurrencyID {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	if err := domain.ValidateRate(rate.Rate); err != nil {
		return nil, err
	}
	if err := s.requireCurrencies(rate.FromCurrencyID, rate.ToCurrencyID); err != nil {
		return nil, err
	}
	pair := ratePair{rate.FromCurrencyID, rate.ToCurrencyID}
	if _, exists := s.rates[pair]; exists {
		return nil, fmt.Errorf("%w: exchange rate %d -> %d already exists", apperrors.ErrDuplicate, pair.from, pair.to)
	}
	s.nextRateID++
	rate.ExchangeRateID = s.nextRateID
	s.rates[pair] = rate
	return &rate, nil
}

func (s *Store) FindExchangeRate(_ context.Context, fromCurrencyID, toCurrencyID int64) (*domain.ExchangeRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rate, ok := s.rates[ratePair{fromCurrencyID, toCurrencyID}]
	if !ok {
		return nil, fmt.Errorf("%w: %d -> %d", apperrors.ErrRateNotFound, fromCurrencyID, toCurrencyID)
	}
	return &rate, nil
}

func (s *Store) ListExchangeRates(_ context.Context) ([]domain.ExchangeRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rates := make([]domain.ExchangeRate, 0, len(s.rates))
	for _, r := range s.rates {
		rates = append(rates, r)
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].FromCurrencyID != rates[j].FromCurrencyID {
			return rates[i].FromCurrencyID < rates[j].FromCurrencyID
		}
		return rates[i].ToCurrencyID < rates[j].ToCurrencyID
	})
	return rates, nil
}

// --- wallets ---

func (s *Store) FindWallet(_ context.Context, key domain.WalletKey) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.wallets[key]
	if !ok {
		return nil, fmt.Errorf("%w: wallet for user %d in currency %d not found", apperrors.ErrNotFound, key.UserID, key.CurrencyID)
	}
	return &wallet, nil
}

func (s *Store) ListWalletsByUser(_ context.Context, userID int64) ([]domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets := make([]domain.Wallet, 0)
	for key, w := range s.wallets {
		if key.UserID == userID {
			wallets = append(wallets, w)
		}
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].CurrencyID < wallets[j].CurrencyID })
	return wallets, nil
}

func (s *Store) GetOrCreateWallet(_ context.Context, key domain.WalletKey) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, err := s.getOrCreateLocked(key)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *Store) CreditWallet(_ context.Context, key domain.WalletKey, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("credit amount must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.ValidateBalance(s.balanceLocked(key).Add(amount)); err != nil {
		return nil, err
	}
	if _, err := s.getOrCreateLocked(key); err != nil {
		return nil, err
	}
	wallet := s.applyLocked(key, amount)
	return &wallet, nil
}

func (s *Store) DebitWallet(_ context.Context, key domain.WalletKey, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("debit amount must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFundsLocked(key, amount); err != nil {
		return nil, err
	}
	wallet := s.applyLocked(key, amount.Neg())
	return &wallet, nil
}

// TransferAtomic checks the source and applies both legs while holding the store lock.
func (s *Store) TransferAtomic(_ context.Context, m domain.TransferMutation) (*domain.TransferOutcome, error) {
	if !m.DebitAmount.IsPositive() || !m.CreditAmount.IsPositive() {
		return nil, apperrors.NewValidationError("transfer amounts must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFundsLocked(m.Source, m.DebitAmount); err != nil {
		return nil, err
	}
	destBalance := s.balanceLocked(m.Destination)
	if m.Destination == m.Source {
		destBalance = destBalance.Sub(m.DebitAmount)
	}
	if err := domain.ValidateBalance(destBalance.Add(m.CreditAmount)); err != nil {
		return nil, err
	}
	if _, err := s.getOrCreateLocked(m.Destination); err != nil {
		return nil, err
	}

	s.applyLocked(m.Source, m.DebitAmount.Neg())
	s.applyLocked(m.Destination, m.CreditAmount)

	return &domain.TransferOutcome{
		FromWallet: s.wallets[m.Source],
		ToWallet:   s.wallets[m.Destination],
	}, nil
}

func (s *Store) balanceLocked(key domain.WalletKey) decimal.Decimal {
	if wallet, ok := s.wallets[key]; ok {
		return wallet.Balance
	}
	return decimal.Zero
}

func (s *Store) checkFundsLocked(key domain.WalletKey, amount decimal.Decimal) error {
	wallet, ok := s.wallets[key]
	if !ok {
		return fmt.Errorf("%w: user %d has no wallet in currency %d", apperrors.ErrInsufficientBalance, key.UserID, key.CurrencyID)
	}
	if wallet.Balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s is below %s", apperrors.ErrInsufficientBalance,
			domain.FormatMoney(wallet.Balance), domain.FormatMoney(amount))
	}
	return nil
}

// getOrCreateLocked enforces the same references the postgres foreign keys do.
func (s *Store) getOrCreateLocked(key domain.WalletKey) (domain.Wallet, error) {
	if wallet, ok := s.wallets[key]; ok {
		return wallet, nil
	}
	if _, ok := s.users[key.UserID]; !ok {
		return domain.Wallet{}, fmt.Errorf("%w: user %d not found", apperrors.ErrNotFound, key.UserID)
	}
	if err := s.requireCurrencies(key.CurrencyID); err != nil {
		return domain.Wallet{}, err
	}

	now := s.now()
	s.nextWalletID++
	wallet := domain.Wallet{
		WalletID:   s.nextWalletID,
		UserID:     key.UserID,
		CurrencyID: key.CurrencyID,
		Balance:    decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	s.wallets[key] = wallet
	return wallet, nil
}

func (s *Store) applyLocked(key domain.WalletKey, delta decimal.Decimal) domain.Wallet {
	wallet := s.wallets[key]
	wallet.Balance = domain.RoundMoney(wallet.Balance.Add(delta))
	wallet.LastUpdatedAt = s.now()
	s.wallets[key] = wallet
	return wallet
}

func (s *Store) requireCurrencies(ids ...int64) error {
	for _, id := range ids {
		if _, ok := s.currencies[id]; !ok {
			return fmt.Errorf("%w: cryptocurrency %d not found", apperrors.ErrNotFound, id)
		}
	}
	return nil
}

// --- reporting ---

func (s *Store) GetTotalBalancePerCurrency(_ context.Context) ([]domain.CurrencyTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[int64]decimal.Decimal)
	for key, w := range s.wallets {
		totals[key.CurrencyID] = totals[key.CurrencyID].Add(w.Balance)
	}

	result := make([]domain.CurrencyTotal, 0, len(totals))
	for id, total := range totals {
		result = append(result, domain.CurrencyTotal{
			CurrencyID:   id,
			CurrencyName: s.currencies[id].Name,
			TotalBalance: total,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CurrencyID < result[j].CurrencyID })
	return result, nil
}
