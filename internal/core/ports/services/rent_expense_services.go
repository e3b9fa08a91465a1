package services

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// RentExpenseSvcFacade defines the operations for monthly apartment bills.
type RentExpenseSvcFacade interface {
	// ListRentExpenses retrieves bills, newest period first.
	ListRentExpenses(ctx context.Context, periodKey *string) ([]domain.RentExpense, error)

	// GetRentExpenseByPeriod retrieves the bill for a "YYYY-MM" period.
	GetRentExpenseByPeriod(ctx context.Context, periodKey string) (*domain.RentExpense, error)

	// UpsertRentExpense inserts or replaces the bill for a period.
	UpsertRentExpense(ctx context.Context, periodKey string, req dto.UpsertRentExpenseRequest, userID string) (*domain.RentExpense, error)

	// GetRentTrends aggregates bills per period bucket, as cost or usage.
	GetRentTrends(ctx context.Context, params dto.RentTrendsParams) ([]dto.RentTrendPoint, error)

	// GetRentBreakdown returns the component breakdown of one period's bill,
	// defaulting to the most recent period.
	GetRentBreakdown(ctx context.Context, periodKey *string) (*dto.RentBreakdownResponse, error)
}
