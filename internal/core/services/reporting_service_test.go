package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/core/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/platform/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetCurrencyTotals(ctx context.Context, from, to time.Time, categoryIDs []string) ([]domain.CurrencyTotal, error) {
	args := m.Called(ctx, from, to, categoryIDs)
	var totals []domain.CurrencyTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CurrencyTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyCurrencyTotals(ctx context.Context, from, to time.Time, categoryIDs []string) ([]domain.MonthlyCurrencyTotal, error) {
	args := m.Called(ctx, from, to, categoryIDs)
	var totals []domain.MonthlyCurrencyTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.MonthlyCurrencyTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetCategoryCurrencyTotals(ctx context.Context, from, to time.Time) ([]domain.CategoryCurrencyTotal, error) {
	args := m.Called(ctx, from, to)
	var totals []domain.CategoryCurrencyTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryCurrencyTotal)
	}
	return totals, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockExpenseRepo   *MockExpenseReader
	mockConversion    *MockConversionService
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockExpenseRepo = new(MockExpenseReader)
	suite.mockConversion = new(MockConversionService)
	suite.service = services.NewReportingService(
		suite.mockReportingRepo,
		suite.mockExpenseRepo,
		suite.mockConversion,
		"USD",
		services.WithDashboardCache(cache.New[dto.DashboardResponse](services.DefaultDashboardTTL)),
	)
}

func (suite *ReportingServiceTestSuite) identityRate(currency string) {
	suite.mockConversion.On("GetRate", mock.Anything, currency, "USD").Return(decimal.NewFromInt(1))
}

// --- GetSummary Tests ---
func (suite *ReportingServiceTestSuite) TestGetSummary_NamedPeriodConvertsTotals() {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	totals := []domain.CurrencyTotal{
		{Currency: "USD", Total: decimal.NewFromInt(100), Count: 4},
		{Currency: "IDR", Total: decimal.NewFromInt(1600000), Count: 2},
	}

	suite.mockReportingRepo.On("GetCurrencyTotals", ctx, from, to, []string(nil)).Return(totals, nil).Once()
	suite.identityRate("USD")
	suite.mockConversion.On("GetRate", ctx, "IDR", "USD").Return(decimal.RequireFromString("0.0000625"))

	summary, err := suite.service.GetSummary(ctx, dto.SummaryParams{Period: "2025-03"})

	suite.Require().NoError(err)
	suite.True(summary.StartDate.Equal(from))
	suite.True(summary.EndDate.Equal(to))
	suite.Equal("USD", summary.Currency)
	suite.True(summary.TotalAmount.Equal(decimal.NewFromInt(200)), "100 USD plus 1.6M IDR at the mocked rate")
	suite.Equal(int64(6), summary.ExpenseCount)
	suite.True(summary.AverageAmount.Equal(decimal.RequireFromString("33.33")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSummary_InvalidPeriod() {
	ctx := context.Background()

	summary, err := suite.service.GetSummary(ctx, dto.SummaryParams{Period: "not-a-period"})

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetCurrencyTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetSummary_ExplicitEndDateInclusive() {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	// An explicit end date covers that whole day, so the repository bound is
	// the following midnight.
	suite.mockReportingRepo.On("GetCurrencyTotals", ctx, from, endDate.AddDate(0, 0, 1), []string(nil)).
		Return([]domain.CurrencyTotal{{Currency: "USD", Total: decimal.NewFromInt(10), Count: 1}}, nil).Once()
	suite.identityRate("USD")

	summary, err := suite.service.GetSummary(ctx, dto.SummaryParams{StartDate: &from, EndDate: &endDate})

	suite.Require().NoError(err)
	suite.True(summary.TotalAmount.Equal(decimal.NewFromInt(10)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- GetTrends Tests ---
func (suite *ReportingServiceTestSuite) TestGetTrends_QuarterlyBuckets() {
	ctx := context.Background()
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	monthly := []domain.MonthlyCurrencyTotal{
		{Year: 2025, Month: 1, Currency: "USD", Total: decimal.NewFromInt(10), Count: 1},
		{Year: 2025, Month: 2, Currency: "USD", Total: decimal.NewFromInt(20), Count: 2},
		{Year: 2025, Month: 4, Currency: "USD", Total: decimal.NewFromInt(40), Count: 1},
	}

	suite.mockReportingRepo.On("GetMonthlyCurrencyTotals", ctx, from, to.AddDate(0, 0, 1), []string(nil)).Return(monthly, nil).Once()
	suite.identityRate("USD")

	points, err := suite.service.GetTrends(ctx, dto.TrendsParams{
		Granularity: "quarterly",
		StartDate:   &from,
		EndDate:     &to,
	})

	suite.Require().NoError(err)
	suite.Require().Len(points, 2)
	suite.Equal("2025-Q1", points[0].Period)
	suite.True(points[0].Total.Equal(decimal.NewFromInt(30)))
	suite.Equal(int64(3), points[0].Count)
	suite.Equal("2025-Q2", points[1].Period)
	suite.True(points[1].Total.Equal(decimal.NewFromInt(40)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetTrends_InvalidGranularity() {
	ctx := context.Background()

	points, err := suite.service.GetTrends(ctx, dto.TrendsParams{Granularity: "weekly"})

	suite.Require().Error(err)
	suite.Nil(points)
}

// --- GetCategoryBreakdown Tests ---
func (suite *ReportingServiceTestSuite) TestGetCategoryBreakdown_SortsAndLabelsUncategorized() {
	ctx := context.Background()
	foodID := uuid.NewString()
	totals := []domain.CategoryCurrencyTotal{
		{CategoryID: nil, CategoryName: "", Currency: "USD", Total: decimal.NewFromInt(50), Count: 1},
		{CategoryID: &foodID, CategoryName: "Food", Currency: "USD", Total: decimal.NewFromInt(80), Count: 3},
	}

	suite.mockReportingRepo.On("GetCategoryCurrencyTotals", ctx, mock.Anything, mock.Anything).Return(totals, nil).Once()
	suite.identityRate("USD")

	items, err := suite.service.GetCategoryBreakdown(ctx, dto.CategoryBreakdownParams{Period: "2025-03"})

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Food", items[0].CategoryName, "largest spend first")
	suite.Equal("Uncategorized", items[1].CategoryName)
	suite.Nil(items[1].CategoryID)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- GetTopExpenses Tests ---
func (suite *ReportingServiceTestSuite) TestGetTopExpenses_SortsByConvertedAmount() {
	ctx := context.Background()
	small := domain.Expense{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(10), Currency: "USD"}
	large := domain.Expense{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(800000), Currency: "IDR"}

	suite.mockExpenseRepo.On("FindExpenses", ctx, mock.Anything).Return([]domain.Expense{small, large}, nil).Once()
	suite.mockConversion.On("Convert", ctx, small.Amount, "USD", "USD").
		Return(domain.ConversionResult{Amount: small.Amount, Rate: decimal.NewFromInt(1), Converted: true}).Once()
	suite.mockConversion.On("Convert", ctx, large.Amount, "IDR", "USD").
		Return(domain.ConversionResult{Amount: decimal.NewFromInt(50), Rate: decimal.RequireFromString("0.0000625"), Converted: true}).Once()

	resp, err := suite.service.GetTopExpenses(ctx, dto.TopExpensesParams{Period: "2025-03", Limit: 1})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Items, 1)
	suite.Equal(large.ExpenseID, resp.Items[0].ExpenseID, "the converted IDR expense outranks the USD one")
	suite.Equal(2, resp.TotalCount)
	suite.True(resp.HasMore)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

// --- GetDashboard Tests ---
func (suite *ReportingServiceTestSuite) TestGetDashboard_MemoizesPerDateRange() {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	bound := endDate.AddDate(0, 0, 1)

	suite.mockReportingRepo.On("GetCurrencyTotals", ctx, from, bound, []string(nil)).
		Return([]domain.CurrencyTotal{{Currency: "USD", Total: decimal.NewFromInt(30), Count: 2}}, nil).Once()
	suite.mockReportingRepo.On("GetCategoryCurrencyTotals", ctx, from, bound).
		Return([]domain.CategoryCurrencyTotal{}, nil).Once()
	suite.mockReportingRepo.On("GetMonthlyCurrencyTotals", ctx, mock.Anything, mock.Anything, []string(nil)).
		Return([]domain.MonthlyCurrencyTotal{}, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, mock.Anything).
		Return([]domain.Expense{}, nil).Once()
	suite.identityRate("USD")

	first, err := suite.service.GetDashboard(ctx, &from, &endDate)
	suite.Require().NoError(err)
	second, err := suite.service.GetDashboard(ctx, &from, &endDate)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	// Every repository expectation is marked Once: a second round of calls
	// would fail the mock assertions.
	suite.mockReportingRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_TenRecentAndSixMonthTrend() {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	trendFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)

	suite.mockReportingRepo.On("GetCurrencyTotals", ctx, mock.Anything, mock.Anything, []string(nil)).
		Return([]domain.CurrencyTotal{}, nil).Once()
	suite.mockReportingRepo.On("GetCategoryCurrencyTotals", ctx, mock.Anything, mock.Anything).
		Return([]domain.CategoryCurrencyTotal{}, nil).Once()
	// The trend covers the last six calendar months, not the requested window.
	suite.mockReportingRepo.On("GetMonthlyCurrencyTotals", ctx, mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(trendFrom)
	}), mock.Anything, []string(nil)).
		Return([]domain.MonthlyCurrencyTotal{}, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, mock.MatchedBy(func(f portsrepo.ExpenseFilter) bool {
		return f.Limit == 10
	})).Return([]domain.Expense{}, nil).Once()

	_, err := suite.service.GetDashboard(ctx, &from, &endDate)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboard_InvalidateForcesRebuild() {
	ctx := context.Background()
	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	bound := endDate.AddDate(0, 0, 1)

	suite.mockReportingRepo.On("GetCurrencyTotals", ctx, from, bound, []string(nil)).
		Return([]domain.CurrencyTotal{}, nil).Twice()
	suite.mockReportingRepo.On("GetCategoryCurrencyTotals", ctx, from, bound).
		Return([]domain.CategoryCurrencyTotal{}, nil).Twice()
	suite.mockReportingRepo.On("GetMonthlyCurrencyTotals", ctx, mock.Anything, mock.Anything, []string(nil)).
		Return([]domain.MonthlyCurrencyTotal{}, nil).Twice()
	suite.mockExpenseRepo.On("FindExpenses", ctx, mock.Anything).
		Return([]domain.Expense{}, nil).Twice()

	_, err := suite.service.GetDashboard(ctx, &from, &endDate)
	suite.Require().NoError(err)

	suite.service.InvalidateDashboard()

	_, err = suite.service.GetDashboard(ctx, &from, &endDate)
	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
