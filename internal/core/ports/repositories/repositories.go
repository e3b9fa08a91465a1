package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	RentExpenseRepo RentExpenseRepositoryFacade
	HistoryRepo     HistoryRepositoryFacade
	ReportingRepo   ReportingRepository
}
