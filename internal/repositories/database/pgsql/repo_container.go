package pgsql

import (
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider constructs every pgsql-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		RentExpenseRepo: newPgxRentExpenseRepository(dbPool),
		HistoryRepo:     newPgxHistoryRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
