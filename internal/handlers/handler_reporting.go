package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/SscSPs/fleet_logistics_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for on-demand reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting specific routes
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/receivables-aging", h.receivablesAging)
		reports.GET("/fleet-summary", h.fleetSummary)
	}
}

// receivablesAging godoc
// @Summary Receivables aging report
// @Description Buckets every open invoice balance by days since invoicing, computed as of now.
// @Tags reports
// @Produce json
// @Param clientID query string false "Narrow the report to one client"
// @Success 200 {object} dto.AgingReportResponse
// @Failure 404 {object} ErrorResponse "Unknown client"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/receivables-aging [get]
func (h *reportingHandler) receivablesAging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var clientID *string
	if v := c.Query("clientID"); v != "" {
		clientID = &v
	}

	report, err := h.reportingService.ReceivablesAging(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to build receivables aging report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAgingReportResponse(report))
}

// fleetSummary godoc
// @Summary Fleet summary
// @Description Returns headline counts and the total open receivables for the dashboard.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FleetSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/fleet-summary [get]
func (h *reportingHandler) fleetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.FleetSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build fleet summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFleetSummaryResponse(summary))
}
