package mapping

import (
	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_ledger/internal/models"
)

// ToModelCurrency converts a domain Cryptocurrency to a model Cryptocurrency
func ToModelCurrency(d domain.Cryptocurrency) models.Cryptocurrency {
	return models.Cryptocurrency{
		CurrencyID:  d.CurrencyID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Cryptocurrency to a domain Cryptocurrency
func ToDomainCurrency(m models.Cryptocurrency) domain.Cryptocurrency {
	return domain.Cryptocurrency{
		CurrencyID:  m.CurrencyID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Cryptocurrencies to a slice of domain Cryptocurrencies
func ToDomainCurrencySlice(ms []models.Cryptocurrency) []domain.Cryptocurrency {
	ds := make([]domain.Cryptocurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
