package domain

import "github.com/shopspring/decimal"

// ConversionResult is the outcome of a currency conversion.
// Converted is false when no usable rate was available and the amount was
// passed through unchanged (rate 1).
type ConversionResult struct {
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Converted bool            `json:"converted"`
}
