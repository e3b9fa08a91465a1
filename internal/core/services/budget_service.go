package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var percentFactor = decimal.NewFromInt(100)

type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepositoryFacade
	expenseRepo     portsrepo.ExpenseReader
	conversion      portssvc.ConversionSvcFacade
	defaultCurrency string
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// NewBudgetService creates a new budget service.
func NewBudgetService(
	budgetRepo portsrepo.BudgetRepositoryFacade,
	expenseRepo portsrepo.ExpenseReader,
	conversion portssvc.ConversionSvcFacade,
	defaultCurrency string,
) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:      budgetRepo,
		expenseRepo:     expenseRepo,
		conversion:      conversion,
		defaultCurrency: strings.ToUpper(defaultCurrency),
	}
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationError("budget amount must be positive")
	}
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("budget end date must be after its start date")
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Currency:   currency,
		Period:     domain.BudgetPeriod(req.Period),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget")
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context, periodFilter *domain.BudgetPeriod, categoryID *string) ([]domain.Budget, error) {
	return s.budgetRepo.FindBudgets(ctx, periodFilter, categoryID)
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, updaterUserID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, apperrors.NewValidationError("budget amount must be positive")
		}
		budget.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		budget.CategoryID = req.CategoryID
	}
	if req.Currency != nil {
		budget.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Period != nil {
		budget.Period = domain.BudgetPeriod(*req.Period)
	}
	if req.StartDate != nil {
		budget.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		budget.EndDate = req.EndDate
	}
	if budget.EndDate != nil && !budget.EndDate.After(budget.StartDate) {
		return nil, apperrors.NewValidationError("budget end date must be after its start date")
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = updaterUserID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", "budget_id", budgetID)
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", "budget_id", budgetID)
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

func (s *budgetService) GetBudgetUsage(ctx context.Context, budgetID string) (*domain.BudgetUsage, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	start, end := budgetWindow(budget, time.Now())
	filter := portsrepo.ExpenseFilter{
		StartDate: &start,
		EndDate:   &end,
	}
	if budget.CategoryID != nil {
		filter.CategoryIDs = []string{*budget.CategoryID}
	}

	expenses, err := s.expenseRepo.FindExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for budget usage", "budget_id", budgetID)
		return nil, fmt.Errorf("failed to load expenses for budget usage: %w", err)
	}

	spent := decimal.Zero
	for _, e := range expenses {
		converted := s.conversion.Convert(ctx, e.Amount, e.Currency, budget.Currency)
		spent = spent.Add(converted.Amount)
	}

	percent := decimal.Zero
	if budget.Amount.IsPositive() {
		percent = spent.Div(budget.Amount).Mul(percentFactor).Round(2)
	}

	return &domain.BudgetUsage{
		BudgetID:    budget.BudgetID,
		Currency:    budget.Currency,
		Amount:      budget.Amount,
		Spent:       spent,
		Remaining:   budget.Amount.Sub(spent),
		PercentUsed: percent,
	}, nil
}

// budgetWindow resolves the half-open interval a budget's spend is measured
// over. An explicit end date is inclusive; otherwise the window is the
// current month or year the budget recurs in.
func budgetWindow(budget *domain.Budget, now time.Time) (time.Time, time.Time) {
	if budget.EndDate != nil {
		return budget.StartDate, inclusiveEnd(*budget.EndDate)
	}
	switch budget.Period {
	case domain.BudgetYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
}
