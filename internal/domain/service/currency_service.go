package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CurrencyService resolves the currency used in a country.
type CurrencyService interface {
	// CurrencyFromCountry returns the first currency of the named country.
	CurrencyFromCountry(ctx context.Context, country string) (*entity.Currency, error)
}
