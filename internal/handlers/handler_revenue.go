package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/dto"
	"github.com/hoteldesk/hotel_ops_backend/internal/middleware"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 90
)

// revenueHandler handles HTTP requests for revenue reports and dashboard cards
type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
}

func newRevenueHandler(rs portssvc.RevenueSvcFacade) *revenueHandler {
	return &revenueHandler{
		revenueService: rs,
	}
}

// RegisterRevenueRoutes registers the revenue report and dashboard routes
func RegisterRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := newRevenueHandler(revenueService)

	reports := rg.Group("/reports")
	{
		reports.GET("/revenue-statement", h.getRevenueStatement)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/revenue", h.getDashboardRevenue)
		dashboard.GET("/revenue-trend", h.getRevenueTrend)
	}
}

// parseReportDate reads the required `date` query param. Requests without a
// date are rejected before any aggregation starts.
func parseReportDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date is required"})
		return time.Time{}, false
	}
	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Invalid date format", slog.String("date", dateStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// respondRevenueError maps a source failure to 502 and everything else to 500.
func respondRevenueError(c *gin.Context, err error) {
	var srcErr *apperrors.SourceError
	if errors.As(err, &srcErr) {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Revenue source unavailable: " + string(srcErr.Source)})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
}

// getRevenueStatement godoc
// @Summary Generate revenue statement
// @Description Generates the per-category revenue statement for a report date, covering the date itself and month-to-date.
// @Tags reports
// @Produce json
// @Param date query string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.RevenueStatementResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid date"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "A revenue source is unavailable"
// @Security BearerAuth
// @Router /reports/revenue-statement [get]
func (h *revenueHandler) getRevenueStatement(c *gin.Context) {
	date, ok := parseReportDate(c)
	if !ok {
		return
	}

	statement, err := h.revenueService.Statement(c.Request.Context(), date)
	if err != nil {
		respondRevenueError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueStatementResponse(statement))
}

// getDashboardRevenue godoc
// @Summary Dashboard revenue card
// @Description Returns today's collection, today's revenue, month-to-date revenue and target progress.
// @Tags dashboard
// @Produce json
// @Param date query string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardRevenueResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid date"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "A revenue source is unavailable"
// @Security BearerAuth
// @Router /dashboard/revenue [get]
func (h *revenueHandler) getDashboardRevenue(c *gin.Context) {
	date, ok := parseReportDate(c)
	if !ok {
		return
	}

	summary, err := h.revenueService.DashboardSummary(c.Request.Context(), date)
	if err != nil {
		respondRevenueError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardRevenueResponse(domain.Day(date).Format(domain.DateLayout), summary))
}

// getRevenueTrend godoc
// @Summary Daily revenue trend
// @Description Returns the gap-free daily revenue series for the trailing N days, with occupancy and ADR.
// @Tags dashboard
// @Produce json
// @Param date query string true "Series end date (YYYY-MM-DD)"
// @Param days query int false "Number of trailing days (1-90)" default(30)
// @Success 200 {object} dto.RevenueTrendResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid date, or invalid days"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "A revenue source is unavailable"
// @Security BearerAuth
// @Router /dashboard/revenue-trend [get]
func (h *revenueHandler) getRevenueTrend(c *gin.Context) {
	date, ok := parseReportDate(c)
	if !ok {
		return
	}

	daysStr := c.DefaultQuery("days", strconv.Itoa(defaultTrendDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 || days > maxTrendDays {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be an integer between 1 and 90"})
		return
	}

	series, err := h.revenueService.Trend(c.Request.Context(), date, days)
	if err != nil {
		respondRevenueError(c, err)
		return
	}

	window := domain.TrailingWindow(date, days)
	c.JSON(http.StatusOK, dto.ToRevenueTrendResponse(window, series))
}
