package handlers

import (
	"net/http"

	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles ad-hoc currency conversion requests.
type currencyHandler struct {
	conversionService portssvc.ConversionSvcFacade
	defaultCurrency   string
}

func newCurrencyHandler(cs portssvc.ConversionSvcFacade, defaultCurrency string) *currencyHandler {
	return &currencyHandler{conversionService: cs, defaultCurrency: defaultCurrency}
}

// RegisterCurrencyRoutes registers routes related to currency conversion.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, defaultCurrency string) {
	h := newCurrencyHandler(conversionService, defaultCurrency)

	currency := rg.Group("/currency")
	{
		currency.GET("/convert", h.convertCurrency)
	}
}

// convertCurrency godoc
// @Summary Convert an amount
// @Description Converts an amount between currencies. Never fails: without a usable rate the amount passes through unchanged with converted=false.
// @Tags currency
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from_currency query string true "Source currency code"
// @Param to_currency query string false "Target currency code, defaults to the configured default currency"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /currency/convert [get]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a valid number"})
		return
	}
	from := c.Query("from_currency")
	if from == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from_currency is required"})
		return
	}
	to := c.Query("to_currency")
	if to == "" {
		to = h.defaultCurrency
	}

	result := h.conversionService.Convert(c.Request.Context(), amount, from, to)
	c.JSON(http.StatusOK, dto.ConvertCurrencyResponse{
		OriginalAmount:  amount,
		ConvertedAmount: result.Amount,
		FromCurrency:    from,
		ToCurrency:      to,
		Rate:            result.Rate,
		Converted:       result.Converted,
		FormattedAmount: utils.FormatWithCurrencyPrecision(result.Amount, to),
	})
}
