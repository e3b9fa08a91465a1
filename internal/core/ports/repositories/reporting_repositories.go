package repositories

import (
	"context"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
)

// ReportingRepository defines the aggregation queries backing reports.
// All intervals are half-open: [from, to).
type ReportingRepository interface {
	// GetCurrencyTotals sums expenses in the interval grouped by currency.
	GetCurrencyTotals(ctx context.Context, from, to time.Time, categoryIDs []string) ([]domain.CurrencyTotal, error)

	// GetMonthlyCurrencyTotals sums expenses grouped by calendar month and currency.
	GetMonthlyCurrencyTotals(ctx context.Context, from, to time.Time, categoryIDs []string) ([]domain.MonthlyCurrencyTotal, error)

	// GetCategoryCurrencyTotals sums expenses grouped by category and currency.
	GetCategoryCurrencyTotals(ctx context.Context, from, to time.Time) ([]domain.CategoryCurrencyTotal, error)
}
