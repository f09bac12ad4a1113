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

// truckHandler handles HTTP requests related to trucks.
type truckHandler struct {
	truckService portssvc.TruckSvcFacade
}

func newTruckHandler(ts portssvc.TruckSvcFacade) *truckHandler {
	return &truckHandler{truckService: ts}
}

// registerTruckRoutes registers truck specific routes
func registerTruckRoutes(group *gin.RouterGroup, truckService portssvc.TruckSvcFacade) {
	h := newTruckHandler(truckService)

	trucks := group.Group("/trucks")
	{
		trucks.POST("", h.createTruck)
		trucks.GET("", h.listTrucks)
		trucks.GET("/:truckID", h.getTruck)
		trucks.PUT("/:truckID", h.updateTruck)
		trucks.DELETE("/:truckID", h.deactivateTruck)
		trucks.POST("/:truckID/maintenance", h.recordMaintenance)
		trucks.GET("/:truckID/maintenance", h.listMaintenance)
	}
}

// createTruck godoc
// @Summary Create a truck
// @Description Registers a new vehicle in the fleet.
// @Tags trucks
// @Accept json
// @Produce json
// @Param truck body dto.CreateTruckRequest true "Truck details"
// @Success 201 {object} dto.TruckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate registration number"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks [post]
func (h *truckHandler) createTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	truck, err := h.truckService.CreateTruck(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create truck", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create truck"})
		}
		return
	}

	logger.Info("Truck created", slog.String("truck_id", truck.TruckID), slog.String("registration", truck.RegistrationNumber))
	c.JSON(http.StatusCreated, dto.ToTruckResponse(truck))
}

// getTruck godoc
// @Summary Get a truck
// @Description Retrieves a truck by its ID.
// @Tags trucks
// @Produce json
// @Param truckID path string true "Truck ID"
// @Success 200 {object} dto.TruckResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks/{truckID} [get]
func (h *truckHandler) getTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID := c.Param("truckID")

	truck, err := h.truckService.GetTruckByID(c.Request.Context(), truckID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Truck not found"})
			return
		}
		logger.Error("Failed to get truck", slog.String("error", err.Error()), slog.String("truck_id", truckID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve truck"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTruckResponse(truck))
}

// listTrucks godoc
// @Summary List trucks
// @Description Retrieves a paginated list of trucks.
// @Tags trucks
// @Produce json
// @Param includeInactive query bool false "Include inactive trucks" default(false)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTrucksResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks [get]
func (h *truckHandler) listTrucks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTrucksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.truckService.ListTrucks(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list trucks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list trucks"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateTruck godoc
// @Summary Update a truck
// @Description Updates a truck's master data. The odometer cannot be set here; only trip completion advances it.
// @Tags trucks
// @Accept json
// @Produce json
// @Param truckID path string true "Truck ID"
// @Param truck body dto.UpdateTruckRequest true "Fields to update"
// @Success 200 {object} dto.TruckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks/{truckID} [put]
func (h *truckHandler) updateTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID := c.Param("truckID")

	var req dto.UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	truck, err := h.truckService.UpdateTruck(c.Request.Context(), truckID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Truck not found"})
		default:
			logger.Error("Failed to update truck", slog.String("error", err.Error()), slog.String("truck_id", truckID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update truck"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTruckResponse(truck))
}

// deactivateTruck godoc
// @Summary Deactivate a truck
// @Description Takes a truck out of service. Completed trips keep referring to it.
// @Tags trucks
// @Produce json
// @Param truckID path string true "Truck ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks/{truckID} [delete]
func (h *truckHandler) deactivateTruck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID := c.Param("truckID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.truckService.DeactivateTruck(c.Request.Context(), truckID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Truck not found"})
			return
		}
		logger.Error("Failed to deactivate truck", slog.String("error", err.Error()), slog.String("truck_id", truckID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate truck"})
		return
	}

	c.Status(http.StatusNoContent)
}

// recordMaintenance godoc
// @Summary Record truck maintenance
// @Description Appends one entry to the truck's maintenance log.
// @Tags trucks
// @Accept json
// @Produce json
// @Param truckID path string true "Truck ID"
// @Param record body dto.RecordMaintenanceRequest true "Maintenance details"
// @Success 201 {object} dto.MaintenanceRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks/{truckID}/maintenance [post]
func (h *truckHandler) recordMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID := c.Param("truckID")

	var req dto.RecordMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	record, err := h.truckService.RecordMaintenance(c.Request.Context(), truckID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Truck not found"})
		default:
			logger.Error("Failed to record maintenance", slog.String("error", err.Error()), slog.String("truck_id", truckID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record maintenance"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceRecordResponse(record))
}

// listMaintenance godoc
// @Summary List truck maintenance
// @Description Retrieves a truck's maintenance log, newest first.
// @Tags trucks
// @Produce json
// @Param truckID path string true "Truck ID"
// @Success 200 {array} dto.MaintenanceRecordResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trucks/{truckID}/maintenance [get]
func (h *truckHandler) listMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	truckID := c.Param("truckID")

	records, err := h.truckService.ListMaintenanceRecords(c.Request.Context(), truckID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Truck not found"})
			return
		}
		logger.Error("Failed to list maintenance records", slog.String("error", err.Error()), slog.String("truck_id", truckID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list maintenance records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceRecordResponses(records))
}

// driverHandler handles HTTP requests related to drivers.
type driverHandler struct {
	driverService portssvc.DriverSvcFacade
}

func newDriverHandler(ds portssvc.DriverSvcFacade) *driverHandler {
	return &driverHandler{driverService: ds}
}

// registerDriverRoutes registers driver specific routes
func registerDriverRoutes(group *gin.RouterGroup, driverService portssvc.DriverSvcFacade) {
	h := newDriverHandler(driverService)

	drivers := group.Group("/drivers")
	{
		drivers.POST("", h.createDriver)
		drivers.GET("", h.listDrivers)
		drivers.GET("/:driverID", h.getDriver)
		drivers.PUT("/:driverID", h.updateDriver)
		drivers.DELETE("/:driverID", h.deactivateDriver)
	}
}

// createDriver godoc
// @Summary Create a driver
// @Description Registers a new driver.
// @Tags drivers
// @Accept json
// @Produce json
// @Param driver body dto.CreateDriverRequest true "Driver details"
// @Success 201 {object} dto.DriverResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate license number"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers [post]
func (h *driverHandler) createDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create driver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create driver"})
		}
		return
	}

	logger.Info("Driver created", slog.String("driver_id", driver.DriverID))
	c.JSON(http.StatusCreated, dto.ToDriverResponse(driver))
}

// getDriver godoc
// @Summary Get a driver
// @Description Retrieves a driver by their ID.
// @Tags drivers
// @Produce json
// @Param driverID path string true "Driver ID"
// @Success 200 {object} dto.DriverResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers/{driverID} [get]
func (h *driverHandler) getDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	driverID := c.Param("driverID")

	driver, err := h.driverService.GetDriverByID(c.Request.Context(), driverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Driver not found"})
			return
		}
		logger.Error("Failed to get driver", slog.String("error", err.Error()), slog.String("driver_id", driverID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve driver"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDriverResponse(driver))
}

// listDrivers godoc
// @Summary List drivers
// @Description Retrieves a paginated list of drivers.
// @Tags drivers
// @Produce json
// @Param includeInactive query bool false "Include inactive drivers" default(false)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDriversResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers [get]
func (h *driverHandler) listDrivers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDriversParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.driverService.ListDrivers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list drivers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list drivers"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateDriver godoc
// @Summary Update a driver
// @Description Updates a driver's details.
// @Tags drivers
// @Accept json
// @Produce json
// @Param driverID path string true "Driver ID"
// @Param driver body dto.UpdateDriverRequest true "Fields to update"
// @Success 200 {object} dto.DriverResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers/{driverID} [put]
func (h *driverHandler) updateDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	driverID := c.Param("driverID")

	var req dto.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), driverID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Driver not found"})
		default:
			logger.Error("Failed to update driver", slog.String("error", err.Error()), slog.String("driver_id", driverID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update driver"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDriverResponse(driver))
}

// deactivateDriver godoc
// @Summary Deactivate a driver
// @Description Flags a driver inactive. Existing trips keep referring to them.
// @Tags drivers
// @Produce json
// @Param driverID path string true "Driver ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /drivers/{driverID} [delete]
func (h *driverHandler) deactivateDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	driverID := c.Param("driverID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.driverService.DeactivateDriver(c.Request.Context(), driverID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Driver not found"})
			return
		}
		logger.Error("Failed to deactivate driver", slog.String("error", err.Error()), slog.String("driver_id", driverID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate driver"})
		return
	}

	c.Status(http.StatusNoContent)
}
