package repositories

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
)

// RentExpenseReader defines read operations for rent expense data
type RentExpenseReader interface {
	// FindRentExpenseByPeriod retrieves the bill for a "YYYY-MM" period.
	FindRentExpenseByPeriod(ctx context.Context, periodKey string) (*domain.RentExpense, error)

	// FindRentExpenses retrieves bills ordered by period descending.
	// A nil period returns all bills.
	FindRentExpenses(ctx context.Context, periodKey *string) ([]domain.RentExpense, error)
}

// RentExpenseWriter defines write operations for rent expense data
type RentExpenseWriter interface {
	// UpsertRentExpense inserts or replaces the bill for its period.
	UpsertRentExpense(ctx context.Context, rentExpense domain.RentExpense) error
}

// RentExpenseRepositoryFacade combines all rent-expense repository interfaces
type RentExpenseRepositoryFacade interface {
	RentExpenseReader
	RentExpenseWriter
}
