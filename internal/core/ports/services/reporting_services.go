package services

import (
	"context"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// ReportingSvcFacade defines the reporting and dashboard operations.
// All monetary outputs are converted into a single currency through the
// conversion service.
type ReportingSvcFacade interface {
	// GetSummary aggregates expenses over a window.
	GetSummary(ctx context.Context, params dto.SummaryParams) (*dto.SummaryResponse, error)

	// GetTrends buckets spending over time at the requested granularity.
	GetTrends(ctx context.Context, params dto.TrendsParams) ([]dto.TrendPoint, error)

	// GetCategoryBreakdown aggregates spending per category.
	GetCategoryBreakdown(ctx context.Context, params dto.CategoryBreakdownParams) ([]dto.CategoryBreakdownItem, error)

	// GetTopExpenses lists the largest expenses in a period, sorted by their
	// converted amount.
	GetTopExpenses(ctx context.Context, params dto.TopExpensesParams) (*dto.TopExpensesResponse, error)

	// GetDashboard returns the combined dashboard payload, memoized for a
	// short TTL per date range.
	GetDashboard(ctx context.Context, startDate, endDate *time.Time) (*dto.DashboardResponse, error)

	// InvalidateDashboard drops all memoized dashboard payloads. Called after
	// expense or category mutations.
	InvalidateDashboard()
}
