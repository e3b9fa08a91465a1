package services

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// BudgetSvcFacade defines the operations for managing budgets.
type BudgetSvcFacade interface {
	// CreateBudget persists a new budget.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error)

	// GetBudgetByID retrieves a budget.
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves budgets, optionally filtered by period and category.
	ListBudgets(ctx context.Context, periodFilter *domain.BudgetPeriod, categoryID *string) ([]domain.Budget, error)

	// UpdateBudget updates a budget.
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, updaterUserID string) (*domain.Budget, error)

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string) error

	// GetBudgetUsage computes the spend position of a budget, converting every
	// expense into the budget's currency.
	GetBudgetUsage(ctx context.Context, budgetID string) (*domain.BudgetUsage, error)
}
