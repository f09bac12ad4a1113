package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sequenceHandler exposes the business-number generator for back-office tools
// that pre-print documents (manual bilty books, expense vouchers).
type sequenceHandler struct {
	sequenceService portssvc.SequenceSvcFacade
}

func newSequenceHandler(ss portssvc.SequenceSvcFacade) *sequenceHandler {
	return &sequenceHandler{sequenceService: ss}
}

// registerSequenceRoutes registers sequence specific routes
func registerSequenceRoutes(group *gin.RouterGroup, sequenceService portssvc.SequenceSvcFacade) {
	h := newSequenceHandler(sequenceService)
	group.GET("/sequences/next", h.nextNumber)
}

// nextNumber godoc
// @Summary Draw the next business number
// @Description Consumes and returns the next sequential number for the given prefix. The number is spent even if the caller discards it.
// @Tags sequences
// @Produce json
// @Param prefix query string true "Number prefix" Enums(TR, INV, EXP)
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sequences/next [get]
func (h *sequenceHandler) nextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	prefix := c.Query("prefix")
	switch prefix {
	case "TR", "INV", "EXP":
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "prefix must be one of TR, INV, EXP"})
		return
	}

	number, err := h.sequenceService.NextSequenceNumber(c.Request.Context(), prefix)
	if err != nil {
		logger.Error("Failed to draw sequence number", slog.String("error", err.Error()), slog.String("prefix", prefix))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to draw sequence number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sequenceNumber": number})
}
