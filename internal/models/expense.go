package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense row in the database.
// Tags are stored as a JSONB array of strings.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Description string          `db:"description"`
	CategoryID  *string         `db:"category_id"`
	Date        time.Time       `db:"date"`
	Tags        []string        `db:"tags"`
	ReceiptURL  *string         `db:"receipt_url"`
	Location    *string         `db:"location"`
	Notes       *string         `db:"notes"`
	IsRecurring bool            `db:"is_recurring"`
	AuditFields
}
