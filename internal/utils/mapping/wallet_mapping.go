package mapping

import (
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:    d.WalletID,
		UserID:      d.UserID,
		CurrencyID:  d.CurrencyID,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:    m.WalletID,
		UserID:      m.UserID,
		CurrencyID:  m.CurrencyID,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletSlice converts a slice of model Wallets to a slice of domain Wallets
func ToDomainWalletSlice(ms []models.Wallet) []domain.Wallet {
	ds := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWallet(m)
	}
	return ds
}

// ToDomainCurrencyTotalSlice converts rollup rows to domain totals
func ToDomainCurrencyTotalSlice(ms []models.CurrencyTotal) []domain.CurrencyTotal {
	ds := make([]domain.CurrencyTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.CurrencyTotal{
			CurrencyID:   m.CurrencyID,
			CurrencyName: m.CurrencyName,
			TotalBalance: m.TotalBalance,
		}
	}
	return ds
}
