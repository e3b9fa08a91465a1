package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rentExpenseHandler handles HTTP requests for monthly apartment bills.
type rentExpenseHandler struct {
	rentService portssvc.RentExpenseSvcFacade
}

func newRentExpenseHandler(rs portssvc.RentExpenseSvcFacade) *rentExpenseHandler {
	return &rentExpenseHandler{rentService: rs}
}

// registerRentExpenseRoutes registers routes related to rent expenses.
func registerRentExpenseRoutes(rg *gin.RouterGroup, rentService portssvc.RentExpenseSvcFacade) {
	h := newRentExpenseHandler(rentService)

	rent := rg.Group("/rent-expenses")
	{
		rent.GET("", h.listRentExpenses)
		rent.GET("/trends", h.getRentTrends)
		rent.GET("/breakdown", h.getRentBreakdown)
		rent.GET("/:period", h.getRentExpenseByPeriod)
		rent.PUT("/:period", h.upsertRentExpense)
	}
}

// listRentExpenses godoc
// @Summary List rent expenses
// @Description Retrieves monthly bills, newest period first
// @Tags rent-expenses
// @Produce json
// @Param period query string false "Filter to one YYYY-MM period"
// @Success 200 {array} domain.RentExpense
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /rent-expenses [get]
func (h *rentExpenseHandler) listRentExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var periodKey *string
	if raw := c.Query("period"); raw != "" {
		periodKey = &raw
	}

	bills, err := h.rentService.ListRentExpenses(c.Request.Context(), periodKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list rent expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rent expenses"})
		return
	}

	c.JSON(http.StatusOK, bills)
}

// getRentExpenseByPeriod godoc
// @Summary Get a rent expense
// @Description Retrieves the bill for one YYYY-MM period
// @Tags rent-expenses
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {object} domain.RentExpense
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rent-expenses/{period} [get]
func (h *rentExpenseHandler) getRentExpenseByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodKey := c.Param("period")

	bill, err := h.rentService.GetRentExpenseByPeriod(c.Request.Context(), periodKey)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rent expense not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to get rent expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve rent expense"})
		}
		return
	}

	c.JSON(http.StatusOK, bill)
}

// upsertRentExpense godoc
// @Summary Upsert a rent expense
// @Description Inserts or replaces the bill for one YYYY-MM period
// @Tags rent-expenses
// @Accept json
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Param bill body dto.UpsertRentExpenseRequest true "Bill components"
// @Success 200 {object} domain.RentExpense
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /rent-expenses/{period} [put]
func (h *rentExpenseHandler) upsertRentExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodKey := c.Param("period")

	var req dto.UpsertRentExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.rentService.UpsertRentExpense(c.Request.Context(), periodKey, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to upsert rent expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upsert rent expense"})
		return
	}

	c.JSON(http.StatusOK, bill)
}

// getRentTrends godoc
// @Summary Rent trends
// @Description Aggregates bills per period bucket, as cost or usage
// @Tags rent-expenses
// @Produce json
// @Param granularity query string false "monthly, quarterly, semester or yearly"
// @Param category query string false "Bill component (electricity, water, service_charge, sinking_fund, fitout)"
// @Param view query string false "cost, electricity_usage or water_usage"
// @Success 200 {array} dto.RentTrendPoint
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /rent-expenses/trends [get]
func (h *rentExpenseHandler) getRentTrends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.RentTrendsParams{
		Granularity: c.Query("granularity"),
		UsageView:   dto.RentUsageView(c.DefaultQuery("view", string(dto.RentViewCost))),
	}
	if raw := c.Query("category"); raw != "" {
		category := domain.RentCategory(raw)
		switch category {
		case domain.RentElectricity, domain.RentWater, domain.RentServiceCharge, domain.RentSinkingFund, domain.RentFitout:
			params.Category = &category
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rent category"})
			return
		}
	}

	trends, err := h.rentService.GetRentTrends(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build rent trends", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build rent trends"})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// getRentBreakdown godoc
// @Summary Rent breakdown
// @Description Returns the component breakdown of one period's bill, defaulting to the latest
// @Tags rent-expenses
// @Produce json
// @Param period query string false "Period (YYYY-MM)"
// @Success 200 {object} dto.RentBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rent-expenses/breakdown [get]
func (h *rentExpenseHandler) getRentBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var periodKey *string
	if raw := c.Query("period"); raw != "" {
		periodKey = &raw
	}

	breakdown, err := h.rentService.GetRentBreakdown(c.Request.Context(), periodKey)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No rent expenses recorded"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to build rent breakdown", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build rent breakdown"})
		}
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
