package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/core/services"
	"github.com/andridns/expense-tracker-backend/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Stub RateSource ---
type stubRateSource struct {
	mu    sync.Mutex
	calls int
	rates map[string]decimal.Decimal
	err   error
	delay time.Duration
}

func (s *stubRateSource) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.rates, nil
}

func (s *stubRateSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	source     *stubRateSource
	conversion portssvc.ConversionSvcFacade

	nowMu sync.Mutex
	now   time.Time
}

func (suite *ConversionServiceTestSuite) clock() time.Time {
	suite.nowMu.Lock()
	defer suite.nowMu.Unlock()
	return suite.now
}

func (suite *ConversionServiceTestSuite) advance(d time.Duration) {
	suite.nowMu.Lock()
	suite.now = suite.now.Add(d)
	suite.nowMu.Unlock()
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.source = &stubRateSource{
		rates: map[string]decimal.Decimal{
			"IDR": decimal.NewFromInt(16000),
			"EUR": decimal.RequireFromString("0.92"),
		},
	}
	suite.now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rateCache := cache.New(services.DefaultRateTTL, cache.WithClock[decimal.Decimal](suite.clock))
	suite.conversion = services.NewConversionService(suite.source, services.WithRateCache(rateCache))
}

func (suite *ConversionServiceTestSuite) TestGetRate_IdentityPair() {
	ctx := context.Background()

	rate := suite.conversion.GetRate(ctx, "usd", " USD ")

	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.Equal(0, suite.source.callCount(), "identity pairs must not hit the provider")
}

func (suite *ConversionServiceTestSuite) TestGetRate_FetchesAndCaches() {
	ctx := context.Background()

	first := suite.conversion.GetRate(ctx, "USD", "IDR")
	second := suite.conversion.GetRate(ctx, "usd", "idr")

	suite.True(first.Equal(decimal.NewFromInt(16000)))
	suite.True(second.Equal(first))
	suite.Equal(1, suite.source.callCount(), "second lookup must be served from cache")
}

func (suite *ConversionServiceTestSuite) TestGetRate_ExpiredEntryRefetches() {
	ctx := context.Background()

	suite.conversion.GetRate(ctx, "USD", "IDR")
	suite.advance(services.DefaultRateTTL + time.Second)
	rate := suite.conversion.GetRate(ctx, "USD", "IDR")

	suite.True(rate.Equal(decimal.NewFromInt(16000)))
	suite.Equal(2, suite.source.callCount(), "an expired entry is a miss, not a stale hit")
}

func (suite *ConversionServiceTestSuite) TestGetRate_ProviderErrorFallsBackAndRetries() {
	ctx := context.Background()
	suite.source.err = assert.AnError

	first := suite.conversion.GetRate(ctx, "USD", "IDR")
	second := suite.conversion.GetRate(ctx, "USD", "IDR")

	suite.True(first.Equal(decimal.NewFromInt(1)))
	suite.True(second.Equal(decimal.NewFromInt(1)))
	suite.Equal(2, suite.source.callCount(), "identity fallbacks must not be cached")
}

func (suite *ConversionServiceTestSuite) TestGetRate_MissingTargetFallsBack() {
	ctx := context.Background()

	rate := suite.conversion.GetRate(ctx, "USD", "JPY")

	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.Equal(1, suite.source.callCount())
}

func (suite *ConversionServiceTestSuite) TestConvert_AppliesRate() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10)

	result := suite.conversion.Convert(ctx, amount, "USD", "IDR")

	suite.True(result.Amount.Equal(decimal.NewFromInt(160000)))
	suite.True(result.Rate.Equal(decimal.NewFromInt(16000)))
	suite.True(result.Converted)
}

func (suite *ConversionServiceTestSuite) TestConvert_FallbackReportsUnconverted() {
	ctx := context.Background()
	suite.source.err = assert.AnError
	amount := decimal.RequireFromString("42.50")

	result := suite.conversion.Convert(ctx, amount, "USD", "IDR")

	suite.True(result.Amount.Equal(amount))
	suite.True(result.Rate.Equal(decimal.NewFromInt(1)))
	suite.False(result.Converted)
}

func (suite *ConversionServiceTestSuite) TestInvalidate_DropsSinglePair() {
	ctx := context.Background()

	suite.conversion.GetRate(ctx, "USD", "IDR")
	suite.conversion.GetRate(ctx, "USD", "EUR")
	suite.conversion.Invalidate("usd", "idr")
	suite.conversion.GetRate(ctx, "USD", "IDR")
	suite.conversion.GetRate(ctx, "USD", "EUR")

	// Two initial fetches plus one refetch for the invalidated pair.
	suite.Equal(3, suite.source.callCount())
}

func (suite *ConversionServiceTestSuite) TestInvalidateAll_DropsEverything() {
	ctx := context.Background()

	suite.conversion.GetRate(ctx, "USD", "IDR")
	suite.conversion.GetRate(ctx, "USD", "EUR")
	suite.conversion.InvalidateAll()
	suite.conversion.GetRate(ctx, "USD", "IDR")
	suite.conversion.GetRate(ctx, "USD", "EUR")

	suite.Equal(4, suite.source.callCount())
}

func (suite *ConversionServiceTestSuite) TestConcurrentLookupsShareOneFetch() {
	ctx := context.Background()
	suite.source.delay = 50 * time.Millisecond

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rate := suite.conversion.GetRate(ctx, "USD", "IDR")
			suite.True(rate.Equal(decimal.NewFromInt(16000)))
		}()
	}
	wg.Wait()

	suite.Equal(1, suite.source.callCount(), "concurrent lookups for one pair must share a single fetch")
}

// --- Run Suite ---
func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
