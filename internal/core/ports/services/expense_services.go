package services

import (
	"context"
	"io"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// ExpenseSvcFacade defines the operations for managing expenses.
// Every mutation appends an audit log entry.
type ExpenseSvcFacade interface {
	// CreateExpense persists a new expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpenseByID retrieves an expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the params. Amount bounds are
	// applied after converting each expense into the default currency.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error)

	// UpdateExpense updates an expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense, detaching its audit entries.
	DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error

	// SuggestTags returns distinct tags matching the query,
	// prefix matches first.
	SuggestTags(ctx context.Context, query string, limit int) ([]string, error)

	// ExportExpensesCSV streams the filtered expenses as CSV.
	ExportExpensesCSV(ctx context.Context, params dto.ListExpensesParams, w io.Writer) error
}
