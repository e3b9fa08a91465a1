package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for reports and the dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report and dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/trends", h.getTrends)
		reports.GET("/category-breakdown", h.getCategoryBreakdown)
		reports.GET("/top-expenses", h.getTopExpenses)
	}
	rg.GET("/dashboard", h.getDashboard)
}

// getSummary godoc
// @Summary Expense summary
// @Description Aggregates expenses over a period or date range, converted into one currency
// @Tags reports
// @Produce json
// @Param period query string false "Period (YYYY, YYYY-MM, YYYY-Qn, YYYY-Sn)"
// @Param startDate query string false "Inclusive start date"
// @Param endDate query string false "Exclusive end date"
// @Param currency query string false "Target currency (defaults to the configured one)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := dto.SummaryParams{
		Period:   c.Query("period"),
		Currency: c.Query("currency"),
	}

	var err error
	if params.StartDate, err = parseDateParam(c.Query("startDate"), "startDate"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if params.EndDate, err = parseDateParam(c.Query("endDate"), "endDate"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build summary report"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getTrends godoc
// @Summary Spending trends
// @Description Buckets spending over time at the requested granularity
// @Tags reports
// @Produce json
// @Param granularity query string false "monthly, quarterly, semester or yearly"
// @Param categoryIDs query string false "Comma-separated category IDs"
// @Param startDate query string false "Inclusive start date"
// @Param endDate query string false "Exclusive end date"
// @Success 200 {array} dto.TrendPoint
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/trends [get]
func (h *reportingHandler) getTrends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := dto.TrendsParams{
		Granularity: c.Query("granularity"),
		CategoryIDs: splitCommaParam(c.Query("categoryIDs")),
	}

	var err error
	if params.StartDate, err = parseDateParam(c.Query("startDate"), "startDate"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if params.EndDate, err = parseDateParam(c.Query("endDate"), "endDate"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	trends, err := h.reportingService.GetTrends(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build trends report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build trends report"})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// getCategoryBreakdown godoc
// @Summary Category breakdown
// @Description Aggregates spending per category over a period or date range
// @Tags reports
// @Produce json
// @Param period query string false "Period (YYYY, YYYY-MM, YYYY-Qn, YYYY-Sn)"
// @Param startDate query string false "Inclusive start date"
// @Param endDate query string false "Exclusive end date"
// @Success 200 {array} dto.CategoryBreakdownItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/category-breakdown [get]
func (h *reportingHandler) getCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params := dto.CategoryBreakdownParams{Period: c.Query("period")}

	var err error
	if params.StartDate, err = parseDateParam(c.Query("startDate"), "startDate"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if params.EndDate, err = parseDateParam(c.Query("endDate"), "endDate"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	breakdown, err := h.reportingService.GetCategoryBreakdown(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build category breakdown"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// getTopExpenses godoc
// @Summary Top expenses
// @Description Lists the largest expenses in a period, sorted by converted amount
// @Tags reports
// @Produce json
// @Param period query string false "Period (YYYY, YYYY-MM, YYYY-Qn, YYYY-Sn)"
// @Param categoryIDs query string false "Comma-separated category IDs"
// @Param limit query int false "Page size (default 10)"
// @Param skip query int false "Rows to skip"
// @Success 200 {object} dto.TopExpensesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-expenses [get]
func (h *reportingHandler) getTopExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	params := dto.TopExpensesParams{
		Period:      c.Query("period"),
		CategoryIDs: splitCommaParam(c.Query("categoryIDs")),
		Limit:       limit,
		Skip:        skip,
	}

	top, err := h.reportingService.GetTopExpenses(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build top expenses report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build top expenses report"})
		return
	}

	c.JSON(http.StatusOK, top)
}

// getDashboard godoc
// @Summary Dashboard
// @Description Returns the combined dashboard payload, memoized per date range
// @Tags dashboard
// @Produce json
// @Param startDate query string false "Inclusive start date"
// @Param endDate query string false "Exclusive end date"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	startDate, err := parseDateParam(c.Query("startDate"), "startDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	endDate, err := parseDateParam(c.Query("endDate"), "endDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context(), startDate, endDate)
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
