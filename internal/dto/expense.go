package dto

import (
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for creating an expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,currencycode"`
	Description string          `json:"description" binding:"required,max=500"`
	CategoryID  *string         `json:"categoryID"`
	Date        time.Time       `json:"date" binding:"required"`
	Tags        []string        `json:"tags"`
	ReceiptURL  *string         `json:"receiptURL"`
	Location    *string         `json:"location"`
	Notes       *string         `json:"notes"`
	IsRecurring bool            `json:"isRecurring"`
}

// UpdateExpenseRequest is the payload for updating an expense.
// Nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency" binding:"omitempty,currencycode"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	CategoryID  *string          `json:"categoryID"`
	Date        *time.Time       `json:"date"`
	Tags        []string         `json:"tags"`
	ReceiptURL  *string          `json:"receiptURL"`
	Location    *string          `json:"location"`
	Notes       *string          `json:"notes"`
	IsRecurring *bool            `json:"isRecurring"`
}

// ListExpensesParams are the query parameters accepted when listing expenses.
// MinAmount and MaxAmount are compared against the amount converted into the
// default currency.
type ListExpensesParams struct {
	CategoryIDs []string
	StartDate   *time.Time
	EndDate     *time.Time
	Tags        []string
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	Search      string
	Limit       int
	Offset      int
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	CategoryID  *string         `json:"categoryID,omitempty"`
	Date        time.Time       `json:"date"`
	Tags        []string        `json:"tags"`
	ReceiptURL  *string         `json:"receiptURL,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	IsRecurring bool            `json:"isRecurring"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToExpenseResponse converts a domain Expense to its API representation.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		Date:        e.Date,
		Tags:        e.Tags,
		ReceiptURL:  e.ReceiptURL,
		Location:    e.Location,
		Notes:       e.Notes,
		IsRecurring: e.IsRecurring,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

// ToExpenseResponseSlice converts domain Expenses to their API representation.
func ToExpenseResponseSlice(es []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(es))
	for i := range es {
		out[i] = ToExpenseResponse(&es[i])
	}
	return out
}
