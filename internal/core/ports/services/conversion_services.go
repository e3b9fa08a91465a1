package services

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSource fetches the full rate table for a base currency from an
// external provider.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// ConversionSvcFacade converts amounts between currencies using a TTL-bound
// rate cache. Conversion never fails: when no usable rate is available the
// amount passes through unchanged with Converted=false.
type ConversionSvcFacade interface {
	// GetRate returns the rate from one currency to another. Identity pairs
	// return 1 without touching the cache or the network; unknown pairs and
	// provider failures degrade to 1.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) decimal.Decimal

	// Convert applies GetRate to an amount and reports whether a real rate
	// was used.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) domain.ConversionResult

	// Invalidate drops the cached rate for one pair.
	Invalidate(fromCurrency, toCurrency string)

	// InvalidateAll drops every cached rate.
	InvalidateAll()
}
