package repositories

import (
	"context"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
)

// ExpenseFilter narrows an expense listing. Zero values mean "no constraint".
// Amount bounds are not part of the filter: they are applied by the service
// after currency conversion.
type ExpenseFilter struct {
	CategoryIDs []string
	StartDate   *time.Time
	EndDate     *time.Time // exclusive upper bound
	Tags        []string // every tag must be present on the expense
	Search      string   // matched against description, notes and location
	Limit       int      // 0 means no limit
	Offset      int
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpenses retrieves expenses matching the filter,
	// ordered by date desc then created_at desc.
	FindExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)

	// FindTags retrieves distinct tags containing the query string.
	FindTags(ctx context.Context, query string, limit int) ([]string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense and clears the expense reference on
	// its audit entries, atomically.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
