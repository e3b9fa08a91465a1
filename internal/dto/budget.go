package dto

import (
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest is the payload for creating a budget.
// A nil CategoryID creates an overall budget.
type CreateBudgetRequest struct {
	CategoryID *string         `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"omitempty,currencycode"`
	Period     string          `json:"period" binding:"required,oneof=monthly yearly"`
	StartDate  time.Time       `json:"startDate" binding:"required"`
	EndDate    *time.Time      `json:"endDate"`
}

// UpdateBudgetRequest is the payload for updating a budget.
// Nil fields are left unchanged.
type UpdateBudgetRequest struct {
	CategoryID *string          `json:"categoryID"`
	Amount     *decimal.Decimal `json:"amount"`
	Currency   *string          `json:"currency" binding:"omitempty,currencycode"`
	Period     *string          `json:"period" binding:"omitempty,oneof=monthly yearly"`
	StartDate  *time.Time       `json:"startDate"`
	EndDate    *time.Time       `json:"endDate"`
}

// BudgetResponse is the API representation of a budget.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID *string         `json:"categoryID,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
}

// BudgetUsageResponse is the API representation of a budget's spend position.
type BudgetUsageResponse struct {
	BudgetID    string          `json:"budgetID"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
}

// ToBudgetResponse converts a domain Budget to its API representation.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Currency:   b.Currency,
		Period:     string(b.Period),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

// ToBudgetResponseSlice converts domain Budgets to their API representation.
func ToBudgetResponseSlice(bs []domain.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(bs))
	for i := range bs {
		out[i] = ToBudgetResponse(&bs[i])
	}
	return out
}

// ToBudgetUsageResponse converts a domain BudgetUsage to its API representation.
func ToBudgetUsageResponse(u *domain.BudgetUsage) BudgetUsageResponse {
	return BudgetUsageResponse{
		BudgetID:    u.BudgetID,
		Currency:    u.Currency,
		Amount:      u.Amount,
		Spent:       u.Spent,
		Remaining:   u.Remaining,
		PercentUsed: u.PercentUsed,
	}
}
