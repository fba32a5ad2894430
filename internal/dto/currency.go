package dto

import (
	"time"

	"github.com/SscSPs/crypto_wallet_ledger/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new cryptocurrency.
type CreateCurrencyRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// CurrencyResponse defines the data returned for a cryptocurrency.
type CurrencyResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Cryptocurrency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Cryptocurrency) CurrencyResponse {
	return CurrencyResponse{
		ID:            curr.CurrencyID,
		Name:          curr.Name,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Cryptocurrency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Cryptocurrency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
