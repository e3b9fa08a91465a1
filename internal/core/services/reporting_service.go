package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/platform/cache"
	"github.com/andridns/expense-tracker-backend/internal/utils/period"
	"github.com/shopspring/decimal"
)

// DashboardInvalidator drops memoized dashboard payloads after a data
// mutation. The reporting service implements it; mutating services hold it.
type DashboardInvalidator interface {
	InvalidateDashboard()
}

const (
	// DefaultDashboardTTL bounds how stale a memoized dashboard payload may
	// get when no mutation invalidates it first.
	DefaultDashboardTTL = 5 * time.Minute

	dashboardKeyPrefix = "dashboard:"

	defaultTopExpensesLimit = 10
	recentExpensesLimit     = 10
	dashboardTrendMonths    = 6
)

type reportingService struct {
	BaseService
	reportingRepo   portsrepo.ReportingRepository
	expenseRepo     portsrepo.ExpenseReader
	conversion      portssvc.ConversionSvcFacade
	defaultCurrency string
	dashboards      *cache.Cache[dto.DashboardResponse]
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)
var _ DashboardInvalidator = (*reportingService)(nil)

// ReportingServiceOption configures the reporting service.
type ReportingServiceOption func(*reportingService)

// WithDashboardCache replaces the default dashboard cache, e.g. to control
// its TTL or clock.
func WithDashboardCache(c *cache.Cache[dto.DashboardResponse]) ReportingServiceOption {
	return func(s *reportingService) {
		s.dashboards = c
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	expenseRepo portsrepo.ExpenseReader,
	conversion portssvc.ConversionSvcFacade,
	defaultCurrency string,
	opts ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	s := &reportingService{
		reportingRepo:   reportingRepo,
		expenseRepo:     expenseRepo,
		conversion:      conversion,
		defaultCurrency: strings.ToUpper(defaultCurrency),
		dashboards:      cache.New[dto.DashboardResponse](DefaultDashboardTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reportingService) GetSummary(ctx context.Context, params dto.SummaryParams) (*dto.SummaryResponse, error) {
	from, to, err := resolveWindow(params.Period, params.StartDate, params.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(params.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}
	return s.summarize(ctx, from, to, currency)
}

func (s *reportingService) summarize(ctx context.Context, from, to time.Time, currency string) (*dto.SummaryResponse, error) {
	totals, err := s.reportingRepo.GetCurrencyTotals(ctx, from, to, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate expense totals")
		return nil, fmt.Errorf("failed to aggregate expense totals: %w", err)
	}

	total, count := s.convertTotals(ctx, totals, currency)

	average := decimal.Zero
	if count > 0 {
		average = total.Div(decimal.NewFromInt(count)).Round(2)
	}

	days := decimal.NewFromFloat(to.Sub(from).Hours() / 24)
	daily := decimal.Zero
	if days.IsPositive() {
		daily = total.Div(days).Round(2)
	}

	return &dto.SummaryResponse{
		StartDate:     from,
		EndDate:       to,
		Currency:      currency,
		TotalAmount:   total,
		ExpenseCount:  count,
		AverageAmount: average,
		DailyAverage:  daily,
	}, nil
}

func (s *reportingService) GetTrends(ctx context.Context, params dto.TrendsParams) ([]dto.TrendPoint, error) {
	granularity := period.Monthly
	if params.Granularity != "" {
		var err error
		if granularity, err = period.ParseGranularity(params.Granularity); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	from := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	if params.StartDate != nil {
		from = *params.StartDate
	}
	to := now
	if params.EndDate != nil {
		to = inclusiveEnd(*params.EndDate)
	}
	return s.trendsForWindow(ctx, from, to, granularity, params.CategoryIDs)
}

func (s *reportingService) trendsForWindow(ctx context.Context, from, to time.Time, granularity period.Granularity, categoryIDs []string) ([]dto.TrendPoint, error) {
	monthly, err := s.reportingRepo.GetMonthlyCurrencyTotals(ctx, from, to, categoryIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate monthly expense totals")
		return nil, fmt.Errorf("failed to aggregate monthly expense totals: %w", err)
	}

	buckets := make(map[string]*dto.TrendPoint)
	for _, m := range monthly {
		key := period.KeyForMonth(m.Year, m.Month, granularity)
		point, ok := buckets[key]
		if !ok {
			point = &dto.TrendPoint{Period: key}
			buckets[key] = point
		}
		rate := s.conversion.GetRate(ctx, m.Currency, s.defaultCurrency)
		point.Total = point.Total.Add(m.Total.Mul(rate))
		point.Count += m.Count
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]dto.TrendPoint, 0, len(keys))
	for _, key := range keys {
		point := buckets[key]
		point.Total = point.Total.Round(2)
		points = append(points, *point)
	}
	return points, nil
}

func (s *reportingService) GetCategoryBreakdown(ctx context.Context, params dto.CategoryBreakdownParams) ([]dto.CategoryBreakdownItem, error) {
	from, to, err := resolveWindow(params.Period, params.StartDate, params.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	return s.breakdownForWindow(ctx, from, to)
}

func (s *reportingService) breakdownForWindow(ctx context.Context, from, to time.Time) ([]dto.CategoryBreakdownItem, error) {
	totals, err := s.reportingRepo.GetCategoryCurrencyTotals(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate category totals")
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}

	type aggregate struct {
		item  dto.CategoryBreakdownItem
		order int
	}
	grouped := make(map[string]*aggregate)
	for _, t := range totals {
		key := ""
		if t.CategoryID != nil {
			key = *t.CategoryID
		}
		agg, ok := grouped[key]
		if !ok {
			name := t.CategoryName
			if t.CategoryID == nil {
				name = "Uncategorized"
			}
			agg = &aggregate{
				item:  dto.CategoryBreakdownItem{CategoryID: t.CategoryID, CategoryName: name},
				order: len(grouped),
			}
			grouped[key] = agg
		}
		rate := s.conversion.GetRate(ctx, t.Currency, s.defaultCurrency)
		agg.item.Total = agg.item.Total.Add(t.Total.Mul(rate))
		agg.item.Count += t.Count
	}

	items := make([]dto.CategoryBreakdownItem, 0, len(grouped))
	for _, agg := range grouped {
		agg.item.Total = agg.item.Total.Round(2)
		items = append(items, agg.item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Total.Equal(items[j].Total) {
			return items[i].Total.GreaterThan(items[j].Total)
		}
		return items[i].CategoryName < items[j].CategoryName
	})
	return items, nil
}

func (s *reportingService) GetTopExpenses(ctx context.Context, params dto.TopExpensesParams) (*dto.TopExpensesResponse, error) {
	from, to, err := resolveWindow(params.Period, nil, nil, time.Now())
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTopExpensesLimit
	}
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}

	expenses, err := s.expenseRepo.FindExpenses(ctx, portsrepo.ExpenseFilter{
		CategoryIDs: params.CategoryIDs,
		StartDate:   &from,
		EndDate:     &to,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for top expenses report")
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	items := make([]dto.TopExpenseItem, 0, len(expenses))
	for i := range expenses {
		converted := s.conversion.Convert(ctx, expenses[i].Amount, expenses[i].Currency, s.defaultCurrency)
		items = append(items, dto.TopExpenseItem{
			ExpenseResponse: dto.ToExpenseResponse(&expenses[i]),
			AmountConverted: converted.Amount.Round(2),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].AmountConverted.GreaterThan(items[j].AmountConverted)
	})

	total := len(items)
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	return &dto.TopExpensesResponse{
		Items:      items[skip:end],
		TotalCount: total,
		HasMore:    end < total,
	}, nil
}

func (s *reportingService) GetDashboard(ctx context.Context, startDate, endDate *time.Time) (*dto.DashboardResponse, error) {
	from, to, err := resolveWindow("", startDate, endDate, time.Now())
	if err != nil {
		return nil, err
	}

	key := dashboardKey(from, to)
	if payload, ok := s.dashboards.Get(key); ok {
		return &payload, nil
	}

	summary, err := s.summarize(ctx, from, to, s.defaultCurrency)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.breakdownForWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	recent, err := s.expenseRepo.FindExpenses(ctx, portsrepo.ExpenseFilter{
		StartDate: &from,
		EndDate:   &to,
		Limit:     recentExpensesLimit,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load recent expenses for dashboard")
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	// The trend always covers the last six calendar months, independent of
	// the requested window.
	now := time.Now()
	trendFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(dashboardTrendMonths - 1), 0)
	trend, err := s.trendsForWindow(ctx, trendFrom, now, period.Monthly, nil)
	if err != nil {
		return nil, err
	}

	payload := dto.DashboardResponse{
		Summary:           *summary,
		CategoryBreakdown: breakdown,
		RecentExpenses:    dto.ToExpenseResponseSlice(recent),
		MonthlyTrend:      trend,
	}
	s.dashboards.Set(key, payload)
	return &payload, nil
}

func (s *reportingService) InvalidateDashboard() {
	s.dashboards.DeletePrefix(dashboardKeyPrefix)
}

// convertTotals folds per-currency totals into one target currency.
func (s *reportingService) convertTotals(ctx context.Context, totals []domain.CurrencyTotal, currency string) (decimal.Decimal, int64) {
	total := decimal.Zero
	var count int64
	for _, t := range totals {
		rate := s.conversion.GetRate(ctx, t.Currency, currency)
		total = total.Add(t.Total.Mul(rate))
		count += t.Count
	}
	return total.Round(2), count
}

func dashboardKey(from, to time.Time) string {
	return dashboardKeyPrefix + from.Format("2006-01-02") + ":" + to.Format("2006-01-02")
}

// resolveWindow turns report parameters into a half-open interval. A named
// period wins over explicit dates; with neither, the current month is used.
// An explicit end date is an inclusive calendar date, so it is widened to
// the following midnight before it becomes the exclusive bound.
func resolveWindow(periodValue string, startDate, endDate *time.Time, now time.Time) (time.Time, time.Time, error) {
	if periodValue != "" {
		return period.Range(periodValue)
	}
	if startDate != nil || endDate != nil {
		from := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
		if startDate != nil {
			from = *startDate
		}
		to := now
		if endDate != nil {
			to = inclusiveEnd(*endDate)
		}
		return from, to, nil
	}
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

// inclusiveEnd widens an inclusive end date to the first instant of the
// following day, for use as the exclusive bound of a half-open query.
func inclusiveEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
