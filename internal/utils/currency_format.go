package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are currencies conventionally written without
// fractional digits.
var zeroDecimalCurrencies = map[string]bool{
	"IDR": true,
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// CurrencyPrecision returns the number of fractional digits conventionally
// used for a currency code.
func CurrencyPrecision(currencyCode string) int {
	if zeroDecimalCurrencies[strings.ToUpper(currencyCode)] {
		return 0
	}
	return 2
}

// FormatWithCurrencyPrecision formats an amount with the correct precision
// for a given currency code.
// Example: amount 12.3456 with USD returns "12.35"
// Example: amount 12345.6 with IDR returns "12346"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currencyCode string) string {
	return amount.Round(int32(CurrencyPrecision(currencyCode))).String()
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
