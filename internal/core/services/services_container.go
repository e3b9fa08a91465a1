package services

import (
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/platform/cache"
	"github.com/andridns/expense-tracker-backend/internal/platform/config"
	"github.com/andridns/expense-tracker-backend/internal/platform/exchangerate"
	"github.com/shopspring/decimal"
)

// NewServiceContainer wires every application service against the repository
// provider and configuration.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	rateSource := exchangerate.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateTimeout)
	conversion := NewConversionService(rateSource,
		WithRateCache(cache.New[decimal.Decimal](cfg.RateCacheTTL)),
	)

	reporting := NewReportingService(repos.ReportingRepo, repos.ExpenseRepo, conversion, cfg.DefaultCurrency,
		WithDashboardCache(cache.New[dto.DashboardResponse](cfg.DashboardCacheTTL)),
	)

	return &portssvc.ServiceContainer{
		User:     NewUserService(repos.UserRepo),
		Category: NewCategoryService(repos.CategoryRepo, WithCategoryDashboardInvalidator(reporting)),
		Expense: NewExpenseService(repos.ExpenseRepo, repos.HistoryRepo, repos.UserRepo, conversion, cfg.DefaultCurrency,
			WithExpenseDashboardInvalidator(reporting)),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.ExpenseRepo, conversion, cfg.DefaultCurrency),
		RentExpense: NewRentExpenseService(repos.RentExpenseRepo),
		Reporting:   reporting,
		History:     NewHistoryService(repos.HistoryRepo),
		Conversion:  conversion,
	}
}
