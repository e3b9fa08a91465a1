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

// historyHandler handles HTTP requests for the expense audit log.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers routes related to the audit log.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("", h.listHistory)
		history.GET("/users", h.listHistoryUsernames)
	}
}

// listHistory godoc
// @Summary List audit entries
// @Description Retrieves one page of the expense audit log, newest first
// @Tags history
// @Produce json
// @Param action query string false "Filter by action (create, update, delete)"
// @Param username query string false "Filter by username"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param nextToken query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := dto.ListHistoryParams{
		Limit:     limit,
		NextToken: c.Query("nextToken"),
	}
	if raw := c.Query("action"); raw != "" {
		params.Action = &raw
	}
	if raw := c.Query("username"); raw != "" {
		params.Username = &raw
	}

	page, err := h.historyService.ListHistory(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list history"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// listHistoryUsernames godoc
// @Summary List audit usernames
// @Description Retrieves the distinct usernames present in the audit log
// @Tags history
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /history/users [get]
func (h *historyHandler) listHistoryUsernames(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	usernames, err := h.historyService.ListHistoryUsernames(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list history usernames", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list history usernames"})
		return
	}

	c.JSON(http.StatusOK, usernames)
}
