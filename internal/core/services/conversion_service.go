package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/platform/cache"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultRateTTL is how long a fetched rate is served before the next
// lookup refetches it. A stale entry is a miss, never served.
const DefaultRateTTL = time.Hour

var identityRate = decimal.NewFromInt(1)

// conversionService converts amounts between currencies. Rates come from a
// RateSource and are cached per currency pair. Lookups never fail: any
// provider problem degrades to the identity rate.
type conversionService struct {
	BaseService
	source portssvc.RateSource
	rates  *cache.Cache[decimal.Decimal]
	group  singleflight.Group
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// ConversionServiceOption configures the conversion service.
type ConversionServiceOption func(*conversionService)

// WithRateCache replaces the default rate cache. Tests use this to inject a
// cache with a controlled clock.
func WithRateCache(c *cache.Cache[decimal.Decimal]) ConversionServiceOption {
	return func(s *conversionService) {
		s.rates = c
	}
}

// NewConversionService creates a conversion service backed by the given
// rate source.
func NewConversionService(source portssvc.RateSource, opts ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	s := &conversionService{
		source: source,
		rates:  cache.New[decimal.Decimal](DefaultRateTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func pairKey(from, to string) string {
	return from + "_" + to
}

// GetRate returns the rate from one currency to another, or 1 when no
// usable rate is available.
func (s *conversionService) GetRate(ctx context.Context, fromCurrency, toCurrency string) decimal.Decimal {
	rate, _ := s.lookupRate(ctx, normalizeCurrency(fromCurrency), normalizeCurrency(toCurrency))
	return rate
}

// Convert applies the pair rate to an amount. Converted is false when the
// amount passed through unchanged because no rate was available.
func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) domain.ConversionResult {
	rate, ok := s.lookupRate(ctx, normalizeCurrency(fromCurrency), normalizeCurrency(toCurrency))
	return domain.ConversionResult{
		Amount:    amount.Mul(rate),
		Rate:      rate,
		Converted: ok,
	}
}

// Invalidate drops the cached rate for one pair.
func (s *conversionService) Invalidate(fromCurrency, toCurrency string) {
	s.rates.Delete(pairKey(normalizeCurrency(fromCurrency), normalizeCurrency(toCurrency)))
}

// InvalidateAll drops every cached rate.
func (s *conversionService) InvalidateAll() {
	s.rates.Clear()
}

// lookupRate resolves a normalized pair. The boolean reports whether a real
// rate was used, false means the identity fallback.
func (s *conversionService) lookupRate(ctx context.Context, from, to string) (decimal.Decimal, bool) {
	if from == to {
		return identityRate, true
	}

	key := pairKey(from, to)
	if rate, ok := s.rates.Get(key); ok {
		return rate, true
	}

	// Concurrent lookups for the same pair share a single fetch.
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// The winner may have cached the rate while we waited on the flight.
		if rate, ok := s.rates.Get(key); ok {
			return rate, nil
		}

		table, err := s.source.FetchRates(ctx, from)
		if err != nil {
			return nil, err
		}

		rate, ok := table[to]
		if !ok {
			return nil, fmt.Errorf("provider table for %s has no rate for %s", from, to)
		}

		s.rates.Set(key, rate)
		return rate, nil
	})
	if err != nil {
		s.LogWarn(ctx, "Currency conversion falling back to identity rate",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()),
		)
		return identityRate, false
	}

	return v.(decimal.Decimal), true
}
