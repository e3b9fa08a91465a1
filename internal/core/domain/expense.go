package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single tracked expense in its original currency.
type Expense struct {
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
	AuditFields
}
