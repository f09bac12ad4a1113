package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AvailabilityServiceTestSuite struct {
	suite.Suite
	mockTripRepo   *MockTripRepository
	mockTruckRepo  *MockTruckReader
	mockDriverRepo *MockDriverReader
	service        portssvc.AvailabilitySvcFacade

	truck     domain.Truck
	baseStart time.Time
	baseEnd   time.Time
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockTruckRepo = new(MockTruckReader)
	suite.mockDriverRepo = new(MockDriverReader)
	suite.service = services.NewAvailabilityService(suite.mockTripRepo, suite.mockTruckRepo, suite.mockDriverRepo)

	suite.truck = domain.Truck{TruckID: uuid.NewString(), IsActive: true}
	suite.baseStart = time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	suite.baseEnd = suite.baseStart.Add(48 * time.Hour)
}

// plannedTripBetween builds a PLANNED trip for the suite's truck over [start, end].
func (suite *AvailabilityServiceTestSuite) plannedTripBetween(start, end time.Time) domain.Trip {
	return domain.Trip{
		TripID:       uuid.NewString(),
		TruckID:      suite.truck.TruckID,
		PlannedStart: start,
		PlannedEnd:   end,
		Status:       domain.TripPlanned,
	}
}

func (suite *AvailabilityServiceTestSuite) expectTruckLookup() {
	suite.mockTruckRepo.On("FindTruckByID", mock.Anything, suite.truck.TruckID).Return(&suite.truck, nil).Once()
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_NoTrips() {
	ctx := context.Background()
	suite.expectTruckLookup()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceTruck, suite.truck.TruckID, (*string)(nil)).Return([]domain.Trip{}, nil).Once()

	free, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, suite.baseStart, suite.baseEnd, nil)

	suite.Require().NoError(err)
	suite.True(free)
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_DisjointWindow() {
	ctx := context.Background()
	trip := suite.plannedTripBetween(suite.baseEnd.Add(time.Hour), suite.baseEnd.Add(24*time.Hour))
	suite.expectTruckLookup()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceTruck, suite.truck.TruckID, (*string)(nil)).Return([]domain.Trip{trip}, nil).Once()

	free, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, suite.baseStart, suite.baseEnd, nil)

	suite.Require().NoError(err)
	suite.True(free)
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_OverlappingWindow() {
	ctx := context.Background()
	trip := suite.plannedTripBetween(suite.baseStart.Add(-24*time.Hour), suite.baseStart.Add(time.Hour))
	suite.expectTruckLookup()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceTruck, suite.truck.TruckID, (*string)(nil)).Return([]domain.Trip{trip}, nil).Once()

	free, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, suite.baseStart, suite.baseEnd, nil)

	suite.Require().NoError(err)
	suite.False(free)
}

// A window that merely touches an existing trip at one instant still conflicts:
// the truck cannot finish one trip and start the next at the same moment.
func (suite *AvailabilityServiceTestSuite) TestIsAvailable_TouchingEndpointConflicts() {
	ctx := context.Background()
	trip := suite.plannedTripBetween(suite.baseStart.Add(-24*time.Hour), suite.baseStart)
	suite.expectTruckLookup()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceTruck, suite.truck.TruckID, (*string)(nil)).Return([]domain.Trip{trip}, nil).Once()

	free, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, suite.baseStart, suite.baseEnd, nil)

	suite.Require().NoError(err)
	suite.False(free)
}

// A RUNNING trip with no actual end blocks every window from its start onwards,
// however far in the future.
func (suite *AvailabilityServiceTestSuite) TestIsAvailable_OpenEndedRunningTrip() {
	ctx := context.Background()
	actualStart := suite.baseStart.Add(-72 * time.Hour)
	trip := suite.plannedTripBetween(actualStart, actualStart.Add(24*time.Hour))
	trip.Status = domain.TripRunning
	trip.ActualStart = &actualStart

	suite.expectTruckLookup()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceTruck, suite.truck.TruckID, (*string)(nil)).Return([]domain.Trip{trip}, nil).Once()

	farStart := suite.baseStart.Add(30 * 24 * time.Hour)
	free, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, farStart, farStart.Add(24*time.Hour), nil)

	suite.Require().NoError(err)
	suite.False(free)
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_ExcludeTripPassedThrough() {
	ctx := context.Background()
	excludeID := uuid.NewString()
	suite.expectTruckLookup()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceTruck, suite.truck.TruckID, &excludeID).Return([]domain.Trip{}, nil).Once()

	free, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, suite.baseStart, suite.baseEnd, &excludeID)

	suite.Require().NoError(err)
	suite.True(free)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_InvertedWindow() {
	ctx := context.Background()

	_, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceTruck, suite.baseEnd, suite.baseStart, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindActiveTripsForResource", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_UnknownTruck() {
	ctx := context.Background()
	missingID := uuid.NewString()
	suite.mockTruckRepo.On("FindTruckByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.IsAvailable(ctx, missingID, domain.ResourceTruck, suite.baseStart, suite.baseEnd, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_UnknownKind() {
	ctx := context.Background()

	_, err := suite.service.IsAvailable(ctx, suite.truck.TruckID, domain.ResourceKind("TRAILER"), suite.baseStart, suite.baseEnd, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AvailabilityServiceTestSuite) TestIsAvailable_DriverLookup() {
	ctx := context.Background()
	driver := domain.Driver{DriverID: uuid.NewString(), IsActive: true}
	suite.mockDriverRepo.On("FindDriverByID", ctx, driver.DriverID).Return(&driver, nil).Once()
	suite.mockTripRepo.On("FindActiveTripsForResource", ctx, domain.ResourceDriver, driver.DriverID, (*string)(nil)).Return([]domain.Trip{}, nil).Once()

	free, err := suite.service.IsAvailable(ctx, driver.DriverID, domain.ResourceDriver, suite.baseStart, suite.baseEnd, nil)

	suite.Require().NoError(err)
	suite.True(free)
	suite.mockDriverRepo.AssertExpectations(suite.T())
}

func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
