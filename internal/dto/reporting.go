package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryParams are the query parameters for the summary report.
// Either Period or the explicit date range may be set; neither defaults to
// the current month.
type SummaryParams struct {
	Period    string // "2025", "2025-03", "2025-Q1", "2025-S2"
	StartDate *time.Time
	EndDate   *time.Time
	Currency  string // target currency, defaults to the configured one
}

// SummaryResponse is an aggregate of expenses over a window, converted into
// a single currency.
type SummaryResponse struct {
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Currency      string          `json:"currency"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	ExpenseCount  int64           `json:"expenseCount"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
	DailyAverage  decimal.Decimal `json:"dailyAverage"`
}

// TrendsParams are the query parameters for the trends report.
type TrendsParams struct {
	Granularity string // monthly | quarterly | semester | yearly
	CategoryIDs []string
	StartDate   *time.Time
	EndDate     *time.Time
}

// TrendPoint is one bucket of a spending trend, in the default currency.
type TrendPoint struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

// CategoryBreakdownParams are the query parameters for the category
// breakdown report. Either Period or the explicit date range may be set.
type CategoryBreakdownParams struct {
	Period    string
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryBreakdownItem is the spend of one category in the default currency.
type CategoryBreakdownItem struct {
	CategoryID   *string         `json:"categoryID,omitempty"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
	Count        int64           `json:"count"`
}

// TopExpensesParams are the query parameters for the top expenses report.
type TopExpensesParams struct {
	Period      string
	CategoryIDs []string
	Limit       int
	Skip        int
}

// TopExpenseItem is one expense annotated with its converted amount.
type TopExpenseItem struct {
	ExpenseResponse
	AmountConverted decimal.Decimal `json:"amountConverted"`
}

// TopExpensesResponse is a paginated list of the largest expenses in a period.
type TopExpensesResponse struct {
	Items      []TopExpenseItem `json:"items"`
	TotalCount int              `json:"totalCount"`
	HasMore    bool             `json:"hasMore"`
}

// DashboardResponse is the combined payload backing the dashboard view.
type DashboardResponse struct {
	Summary           SummaryResponse         `json:"summary"`
	CategoryBreakdown []CategoryBreakdownItem `json:"categoryBreakdown"`
	RecentExpenses    []ExpenseResponse       `json:"recentExpenses"`
	MonthlyTrend      []TrendPoint            `json:"monthlyTrend"`
}
