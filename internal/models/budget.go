package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a budget row in the database.
// A nil CategoryID denotes an overall (non category-scoped) budget.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	CategoryID *string         `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	Period     string          `db:"period"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    *time.Time      `db:"end_date"`
	AuditFields
}
