package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/dto"
)

// collectionHandler handles HTTP requests for the daily collection report
type collectionHandler struct {
	collectionService portssvc.CollectionSvcFacade
}

func newCollectionHandler(cs portssvc.CollectionSvcFacade) *collectionHandler {
	return &collectionHandler{
		collectionService: cs,
	}
}

// RegisterCollectionRoutes registers the daily collection report route
func RegisterCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade) {
	h := newCollectionHandler(collectionService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily-collection", h.getDailyCollection)
	}
}

// getDailyCollection godoc
// @Summary Daily collection report
// @Description Returns settled folio lines and settlement-method totals for a date range.
// @Tags reports
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)" default(startDate)
// @Success 200 {object} dto.DailyCollectionResponse
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/daily-collection [get]
func (h *collectionHandler) getDailyCollection(c *gin.Context) {
	startStr := c.Query("startDate")
	if startStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startDate is required"})
		return
	}
	start, err := time.Parse(domain.DateLayout, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid startDate format. Use YYYY-MM-DD"})
		return
	}

	end := start
	if endStr := c.Query("endDate"); endStr != "" {
		end, err = time.Parse(domain.DateLayout, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid endDate format. Use YYYY-MM-DD"})
			return
		}
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "endDate must not be before startDate"})
		return
	}

	window := domain.ReportWindow{Start: domain.Day(start), End: domain.Day(end)}
	report, err := h.collectionService.DailyCollection(c.Request.Context(), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyCollectionResponse(report))
}
