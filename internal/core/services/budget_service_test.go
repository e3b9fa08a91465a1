package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/core/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	var budget *domain.Budget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.Budget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) FindBudgets(ctx context.Context, periodFilter *domain.BudgetPeriod, categoryID *string) ([]domain.Budget, error) {
	args := m.Called(ctx, periodFilter, categoryID)
	var budgets []domain.Budget
	if args.Get(0) != nil {
		budgets = args.Get(0).([]domain.Budget)
	}
	return budgets, args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Mock ExpenseReader ---
type MockExpenseReader struct {
	mock.Mock
}

func (m *MockExpenseReader) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseReader) FindExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseReader) FindTags(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	var tags []string
	if args.Get(0) != nil {
		tags = args.Get(0).([]string)
	}
	return tags, args.Error(1)
}

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) GetRate(ctx context.Context, fromCurrency, toCurrency string) decimal.Decimal {
	args := m.Called(ctx, fromCurrency, toCurrency)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockConversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) domain.ConversionResult {
	args := m.Called(ctx, amount, fromCurrency, toCurrency)
	return args.Get(0).(domain.ConversionResult)
}

func (m *MockConversionService) Invalidate(fromCurrency, toCurrency string) {
	m.Called(fromCurrency, toCurrency)
}

func (m *MockConversionService) InvalidateAll() {
	m.Called()
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo  *MockBudgetRepository
	mockExpenseRepo *MockExpenseReader
	mockConversion  *MockConversionService
	service         portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockExpenseRepo = new(MockExpenseReader)
	suite.mockConversion = new(MockConversionService)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockExpenseRepo, suite.mockConversion, "usd")
}

// --- CreateBudget Tests ---
func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateBudgetRequest{
		Amount:    decimal.NewFromInt(500),
		Period:    "monthly",
		StartDate: start,
	}

	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Currency == "USD" && b.Period == domain.BudgetMonthly && b.CreatedBy == creatorID
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.Equal("USD", budget.Currency, "empty currency falls back to the default currency, uppercased")
	suite.NotEmpty(budget.BudgetID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Amount:    decimal.Zero,
		Period:    "monthly",
		StartDate: time.Now(),
	}

	budget, err := suite.service.CreateBudget(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_EndBeforeStart() {
	ctx := context.Background()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	req := dto.CreateBudgetRequest{
		Amount:    decimal.NewFromInt(100),
		Period:    "monthly",
		StartDate: start,
		EndDate:   &end,
	}

	budget, err := suite.service.CreateBudget(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateBudget Tests ---
func (suite *BudgetServiceTestSuite) TestUpdateBudget_NotFound() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	amount := decimal.NewFromInt(100)

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(nil, apperrors.ErrNotFound).Once()

	budget, err := suite.service.UpdateBudget(ctx, budgetID, dto.UpdateBudgetRequest{Amount: &amount}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetBudgetUsage Tests ---
func (suite *BudgetServiceTestSuite) TestGetBudgetUsage_ConvertsAndSums() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	budget := &domain.Budget{
		BudgetID:  budgetID,
		Amount:    decimal.NewFromInt(100),
		Currency:  "USD",
		Period:    domain.BudgetMonthly,
		StartDate: start,
		EndDate:   &end,
	}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(50), Currency: "USD"},
		{ExpenseID: uuid.NewString(), Amount: decimal.NewFromInt(400000), Currency: "IDR"},
	}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, mock.MatchedBy(func(f portsrepo.ExpenseFilter) bool {
		// The end date is inclusive, so the exclusive query bound is the
		// following midnight and expenses dated March 31 are counted.
		return f.StartDate != nil && f.StartDate.Equal(start) &&
			f.EndDate != nil && f.EndDate.Equal(end.AddDate(0, 0, 1))
	})).Return(expenses, nil).Once()
	suite.mockConversion.On("Convert", ctx, decimal.NewFromInt(50), "USD", "USD").
		Return(domain.ConversionResult{Amount: decimal.NewFromInt(50), Rate: decimal.NewFromInt(1), Converted: true}).Once()
	suite.mockConversion.On("Convert", ctx, decimal.NewFromInt(400000), "IDR", "USD").
		Return(domain.ConversionResult{Amount: decimal.NewFromInt(25), Rate: decimal.RequireFromString("0.0000625"), Converted: true}).Once()

	usage, err := suite.service.GetBudgetUsage(ctx, budgetID)

	suite.Require().NoError(err)
	suite.Require().NotNil(usage)
	suite.True(usage.Spent.Equal(decimal.NewFromInt(75)))
	suite.True(usage.Remaining.Equal(decimal.NewFromInt(25)))
	suite.True(usage.PercentUsed.Equal(decimal.NewFromInt(75)))
	suite.Equal("USD", usage.Currency)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockConversion.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestGetBudgetUsage_CategoryScoped() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	categoryID := uuid.NewString()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	budget := &domain.Budget{
		BudgetID:   budgetID,
		CategoryID: &categoryID,
		Amount:     decimal.NewFromInt(100),
		Currency:   "USD",
		Period:     domain.BudgetMonthly,
		StartDate:  start,
		EndDate:    &end,
	}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(budget, nil).Once()
	suite.mockExpenseRepo.On("FindExpenses", ctx, mock.MatchedBy(func(f portsrepo.ExpenseFilter) bool {
		return len(f.CategoryIDs) == 1 && f.CategoryIDs[0] == categoryID
	})).Return([]domain.Expense{}, nil).Once()

	usage, err := suite.service.GetBudgetUsage(ctx, budgetID)

	suite.Require().NoError(err)
	suite.True(usage.Spent.IsZero())
	suite.True(usage.Remaining.Equal(budget.Amount))
	suite.True(usage.PercentUsed.IsZero())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

// --- DeleteBudget Tests ---
func (suite *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	ctx := context.Background()
	budgetID := uuid.NewString()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteBudget(ctx, budgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "DeleteBudget", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
