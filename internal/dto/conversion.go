package dto

import "github.com/shopspring/decimal"

// ConvertCurrencyResponse is the result of an ad-hoc currency conversion.
// Converted is false when no usable rate was available and the original
// amount was passed through unchanged.
type ConvertCurrencyResponse struct {
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Rate            decimal.Decimal `json:"rate"`
	Converted       bool            `json:"converted"`
	// FormattedAmount is ConvertedAmount rounded to the conventional
	// precision of the target currency, e.g. "12.35" for USD, "12346" for IDR.
	FormattedAmount string `json:"formattedAmount"`
}
