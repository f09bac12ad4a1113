package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/SscSPs/fleet_logistics_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService         portssvc.TripSvcFacade
	availabilityService portssvc.AvailabilitySvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade, as portssvc.AvailabilitySvcFacade) *tripHandler {
	return &tripHandler{
		tripService:         ts,
		availabilityService: as,
	}
}

// registerTripRoutes registers trip specific routes
func registerTripRoutes(group *gin.RouterGroup, tripService portssvc.TripSvcFacade, availabilityService portssvc.AvailabilitySvcFacade) {
	h := newTripHandler(tripService, availabilityService)

	trips := group.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:tripID", h.getTrip)
		trips.GET("/:tripID/events", h.listTripEvents)
		trips.POST("/:tripID/start", h.startTrip)
		trips.POST("/:tripID/complete", h.completeTrip)
		trips.POST("/:tripID/cancel", h.cancelTrip)
	}

	group.GET("/availability", h.checkAvailability)
}

// createTrip godoc
// @Summary Create a trip
// @Description Plans a new trip after validating resource availability and client credit.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid window or amounts"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Truck, driver or client not found"
// @Failure 409 {object} ErrorResponse "Resource unavailable or inactive"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create trip request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrResourceUnavailable), errors.Is(err, apperrors.ErrInactiveResource):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create trip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create trip"})
		}
		return
	}

	logger.Info("Trip created", slog.String("trip_id", trip.TripID), slog.String("trip_number", trip.TripNumber))
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// getTrip godoc
// @Summary Get a trip
// @Description Retrieves a trip by its ID.
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to get trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve trip"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List trips
// @Description Retrieves trips newest first with token-based pagination, optionally filtered by status.
// @Tags trips
// @Produce json
// @Param status query string false "Trip status filter" Enums(PLANNED, RUNNING, COMPLETED, CANCELLED)
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTripsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTripsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.tripService.ListTrips(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listTripEvents godoc
// @Summary List trip events
// @Description Retrieves a trip's transition history, oldest first.
// @Tags trips
// @Produce json
// @Param tripID path string true "Trip ID"
// @Success 200 {array} dto.TripEventResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/events [get]
func (h *tripHandler) listTripEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	events, err := h.tripService.ListTripEvents(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
			return
		}
		logger.Error("Failed to list trip events", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list trip events"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTripEventResponses(events))
}

// startTrip godoc
// @Summary Start a trip
// @Description Moves a PLANNED trip to RUNNING.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param start body dto.StartTripRequest true "Start details"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Start before grace window"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/start [post]
func (h *tripHandler) startTrip(c *gin.Context) {
	h.transition(c, "start", func(ctx *gin.Context, tripID, userID string) (*domain.Trip, error) {
		var req dto.StartTripRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, bindError(err)
		}
		return h.tripService.StartTrip(ctx.Request.Context(), tripID, req, userID)
	})
}

// completeTrip godoc
// @Summary Complete a trip
// @Description Moves a RUNNING trip to COMPLETED, records distance and expenses, advances the odometer and optionally opens an invoice.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param completion body dto.CompleteTripRequest true "Completion details"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Bad distance, expenses or end time"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/complete [post]
func (h *tripHandler) completeTrip(c *gin.Context) {
	h.transition(c, "complete", func(ctx *gin.Context, tripID, userID string) (*domain.Trip, error) {
		var req dto.CompleteTripRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, bindError(err)
		}
		return h.tripService.CompleteTrip(ctx.Request.Context(), tripID, req, userID)
	})
}

// cancelTrip godoc
// @Summary Cancel a trip
// @Description Moves a PLANNED or RUNNING trip to CANCELLED. The remarks field must say why.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param cancellation body dto.CancelTripRequest true "Cancellation reason"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{tripID}/cancel [post]
func (h *tripHandler) cancelTrip(c *gin.Context) {
	h.transition(c, "cancel", func(ctx *gin.Context, tripID, userID string) (*domain.Trip, error) {
		var req dto.CancelTripRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, bindError(err)
		}
		return h.tripService.CancelTrip(ctx.Request.Context(), tripID, req, userID)
	})
}

// transition runs one lifecycle call and maps its errors to HTTP statuses the
// same way for start, complete and cancel.
func (h *tripHandler) transition(c *gin.Context, action string, fn func(*gin.Context, string, string) (*domain.Trip, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	trip, err := fn(c, tripID, userID)
	if err != nil {
		var bindErr *requestBindError
		switch {
		case errors.As(err, &bindErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + bindErr.Error()})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		case errors.Is(err, apperrors.ErrInvalidStateTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Trip transition failed", slog.String("action", action), slog.String("error", err.Error()), slog.String("trip_id", tripID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action + " trip"})
		}
		return
	}

	logger.Info("Trip transition applied", slog.String("action", action), slog.String("trip_id", trip.TripID), slog.String("status", string(trip.Status)))
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// requestBindError wraps a binding failure so transition can tell it apart from
// service errors.
type requestBindError struct {
	cause error
}

func (e *requestBindError) Error() string { return e.cause.Error() }

func bindError(err error) error { return &requestBindError{cause: err} }

// checkAvailability godoc
// @Summary Check resource availability
// @Description Reports whether a truck or driver is free across a closed time window. Touching endpoints conflict.
// @Tags trips
// @Produce json
// @Param resourceID query string true "Truck or driver ID"
// @Param kind query string true "Resource kind" Enums(TRUCK, DRIVER)
// @Param windowStart query string true "Window start (RFC3339)"
// @Param windowEnd query string true "Window end (RFC3339)"
// @Param excludeTripID query string false "Trip to ignore (when editing)"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown resource"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /availability [get]
func (h *tripHandler) checkAvailability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resourceID := c.Query("resourceID")
	kind := domain.ResourceKind(c.Query("kind"))
	if resourceID == "" || (kind != domain.ResourceTruck && kind != domain.ResourceDriver) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "resourceID and kind (TRUCK or DRIVER) are required"})
		return
	}

	windowStart, err := time.Parse(time.RFC3339, c.Query("windowStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "windowStart must be RFC3339"})
		return
	}
	windowEnd, err := time.Parse(time.RFC3339, c.Query("windowEnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "windowEnd must be RFC3339"})
		return
	}

	var excludeTripID *string
	if v := c.Query("excludeTripID"); v != "" {
		excludeTripID = &v
	}

	available, err := h.availabilityService.IsAvailable(c.Request.Context(), resourceID, kind, windowStart, windowEnd, excludeTripID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
		default:
			logger.Error("Availability check failed", slog.String("error", err.Error()), slog.String("resource_id", resourceID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check availability"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}
