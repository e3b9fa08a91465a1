package domain

import "github.com/shopspring/decimal"

// CurrencyTotal is an aggregate of expense amounts grouped by currency.
type CurrencyTotal struct {
	Currency string
	Total    decimal.Decimal
	Count    int64
}

// MonthlyCurrencyTotal is an aggregate of expense amounts grouped by
// calendar month and currency.
type MonthlyCurrencyTotal struct {
	Year     int
	Month    int
	Currency string
	Total    decimal.Decimal
	Count    int64
}

// CategoryCurrencyTotal is an aggregate of expense amounts grouped by
// category and currency. CategoryID is nil for uncategorized expenses.
type CategoryCurrencyTotal struct {
	CategoryID   *string
	CategoryName string
	Currency     string
	Total        decimal.Decimal
	Count        int64
}
