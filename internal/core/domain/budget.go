package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence of a budget.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit, either overall or scoped to a category.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID *string         `json:"categoryID,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
	AuditFields
}

// BudgetUsage is the computed spend position of a budget, with every expense
// converted into the budget's currency.
type BudgetUsage struct {
	BudgetID    string          `json:"budgetID"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
}
