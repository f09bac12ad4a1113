package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/core/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TripRepository ---
type MockTripRepository struct {
	mock.Mock
}

var _ portsrepo.TripRepositoryFacade = (*MockTripRepository)(nil)

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context, status *domain.TripStatus, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Trip), returnedNextToken, args.Error(2)
}

func (m *MockTripRepository) FindActiveTripsForResource(ctx context.Context, kind domain.ResourceKind, resourceID string, excludeTripID *string) ([]domain.Trip, error) {
	args := m.Called(ctx, kind, resourceID, excludeTripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) FindEventsByTripID(ctx context.Context, tripID string) ([]domain.TripEvent, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripEvent), args.Error(1)
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent) error {
	args := m.Called(ctx, trip, event)
	return args.Error(0)
}

func (m *MockTripRepository) TransitionTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent) error {
	args := m.Called(ctx, trip, event)
	return args.Error(0)
}

func (m *MockTripRepository) CompleteTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent, invoice *domain.Invoice) error {
	args := m.Called(ctx, trip, event, invoice)
	return args.Error(0)
}

// --- Mock TruckReader ---
type MockTruckReader struct {
	mock.Mock
}

var _ portsrepo.TruckReader = (*MockTruckReader)(nil)

func (m *MockTruckReader) FindTruckByID(ctx context.Context, truckID string) (*domain.Truck, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

func (m *MockTruckReader) FindTrucks(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Truck, error) {
	args := m.Called(ctx, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Truck), args.Error(1)
}

func (m *MockTruckReader) FindMaintenanceByTruckID(ctx context.Context, truckID string) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}

// --- Mock DriverReader ---
type MockDriverReader struct {
	mock.Mock
}

var _ portsrepo.DriverReader = (*MockDriverReader)(nil)

func (m *MockDriverReader) FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverReader) FindDrivers(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Driver, error) {
	args := m.Called(ctx, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

// --- Mock ClientReader ---
type MockClientReader struct {
	mock.Mock
}

var _ portsrepo.ClientReader = (*MockClientReader)(nil)

func (m *MockClientReader) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientReader) FindClients(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// --- Mock AvailabilityService ---
type MockAvailabilityService struct {
	mock.Mock
}

var _ portssvc.AvailabilitySvcFacade = (*MockAvailabilityService)(nil)

func (m *MockAvailabilityService) IsAvailable(ctx context.Context, resourceID string, kind domain.ResourceKind, windowStart, windowEnd time.Time, excludeTripID *string) (bool, error) {
	args := m.Called(ctx, resourceID, kind, windowStart, windowEnd, excludeTripID)
	return args.Bool(0), args.Error(1)
}

// --- Mock SequenceService ---
type MockSequenceService struct {
	mock.Mock
}

var _ portssvc.SequenceSvcFacade = (*MockSequenceService)(nil)

func (m *MockSequenceService) NextSequenceNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

// --- Mock CreditChecker ---
type MockCreditChecker struct {
	mock.Mock
}

var _ portssvc.CreditCheckerSvc = (*MockCreditChecker)(nil)

func (m *MockCreditChecker) CreditCheck(ctx context.Context, clientID string, proposedAmount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, clientID, proposedAmount)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite Setup ---
type TripServiceTestSuite struct {
	suite.Suite
	mockTripRepo        *MockTripRepository
	mockTruckRepo       *MockTruckReader
	mockDriverRepo      *MockDriverReader
	mockClientRepo      *MockClientReader
	mockAvailabilitySvc *MockAvailabilityService
	mockSequenceSvc     *MockSequenceService
	mockCreditChecker   *MockCreditChecker
	service             portssvc.TripSvcFacade

	truck  domain.Truck
	driver domain.Driver
	client domain.Client
	userID string
}

func (suite *TripServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockTruckRepo = new(MockTruckReader)
	suite.mockDriverRepo = new(MockDriverReader)
	suite.mockClientRepo = new(MockClientReader)
	suite.mockAvailabilitySvc = new(MockAvailabilityService)
	suite.mockSequenceSvc = new(MockSequenceService)
	suite.mockCreditChecker = new(MockCreditChecker)
	suite.service = services.NewTripService(
		suite.mockTripRepo,
		suite.mockTruckRepo,
		suite.mockDriverRepo,
		suite.mockClientRepo,
		suite.mockAvailabilitySvc,
		suite.mockSequenceSvc,
		suite.mockCreditChecker,
		time.Hour,
	)

	suite.userID = uuid.NewString()
	suite.truck = domain.Truck{
		TruckID:            uuid.NewString(),
		RegistrationNumber: "MH12AB1234",
		CapacityTons:       decimal.NewFromInt(18),
		IsActive:           true,
	}
	suite.driver = domain.Driver{
		DriverID:      uuid.NewString(),
		Name:          "Test Driver",
		LicenseNumber: "DL-1420110012345",
		IsActive:      true,
	}
	suite.client = domain.Client{
		ClientID:    uuid.NewString(),
		Name:        "Test Client",
		CreditLimit: decimal.NewFromInt(100000),
		IsActive:    true,
	}
}

func (suite *TripServiceTestSuite) validCreateRequest() dto.CreateTripRequest {
	start := time.Now().Add(24 * time.Hour).UTC()
	return dto.CreateTripRequest{
		TruckID:       suite.truck.TruckID,
		DriverID:      suite.driver.DriverID,
		ClientID:      suite.client.ClientID,
		FromLocation:  "Pune",
		ToLocation:    "Nagpur",
		PlannedStart:  start,
		PlannedEnd:    start.Add(48 * time.Hour),
		TripCharges:   decimal.NewFromInt(45000),
		AdvanceAmount: decimal.NewFromInt(10000),
	}
}

// --- CreateTrip ---

func (suite *TripServiceTestSuite) TestCreateTrip_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	tripNumber := "TR202608310001"

	suite.mockTruckRepo.On("FindTruckByID", ctx, suite.truck.TruckID).Return(&suite.truck, nil).Once()
	suite.mockDriverRepo.On("FindDriverByID", ctx, suite.driver.DriverID).Return(&suite.driver, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()
	suite.mockAvailabilitySvc.On("IsAvailable", ctx, suite.truck.TruckID, domain.ResourceTruck, req.PlannedStart, req.PlannedEnd, (*string)(nil)).Return(true, nil).Once()
	suite.mockAvailabilitySvc.On("IsAvailable", ctx, suite.driver.DriverID, domain.ResourceDriver, req.PlannedStart, req.PlannedEnd, (*string)(nil)).Return(true, nil).Once()
	suite.mockCreditChecker.On("CreditCheck", ctx, suite.client.ClientID, req.TripCharges).Return(true, nil).Once()
	suite.mockSequenceSvc.On("NextSequenceNumber", ctx, "TR").Return(tripNumber, nil).Once()
	suite.mockTripRepo.On("SaveTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent")).Return(nil).Once()

	trip, err := suite.service.CreateTrip(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(trip)
	suite.NotEmpty(trip.TripID)
	suite.Equal(tripNumber, trip.TripNumber)
	suite.Equal(domain.TripPlanned, trip.Status)
	suite.True(trip.DistanceKM.IsZero())
	suite.Nil(trip.ActualStart)
	suite.Equal(suite.userID, trip.CreatedBy)

	savedEvent := suite.mockTripRepo.Calls[0].Arguments.Get(2).(domain.TripEvent)
	suite.Equal(trip.TripID, savedEvent.TripID)
	suite.Equal(domain.TripPlanned, savedEvent.ToStatus)

	suite.mockTripRepo.AssertExpectations(suite.T())
	suite.mockSequenceSvc.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestCreateTrip_PlannedEndBeforeStart() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.PlannedEnd = req.PlannedStart.Add(-time.Hour)

	_, err := suite.service.CreateTrip(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "SaveTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCreateTrip_AdvanceExceedsCharges() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.AdvanceAmount = req.TripCharges.Add(decimal.NewFromInt(1))

	_, err := suite.service.CreateTrip(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockSequenceSvc.AssertNotCalled(suite.T(), "NextSequenceNumber", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCreateTrip_InactiveTruck() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	suite.truck.IsActive = false

	suite.mockTruckRepo.On("FindTruckByID", ctx, suite.truck.TruckID).Return(&suite.truck, nil).Once()

	_, err := suite.service.CreateTrip(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInactiveResource)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "SaveTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCreateTrip_TruckUnavailable() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockTruckRepo.On("FindTruckByID", ctx, suite.truck.TruckID).Return(&suite.truck, nil).Once()
	suite.mockDriverRepo.On("FindDriverByID", ctx, suite.driver.DriverID).Return(&suite.driver, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()
	suite.mockAvailabilitySvc.On("IsAvailable", ctx, suite.truck.TruckID, domain.ResourceTruck, req.PlannedStart, req.PlannedEnd, (*string)(nil)).Return(false, nil).Once()

	_, err := suite.service.CreateTrip(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrResourceUnavailable)
	suite.mockSequenceSvc.AssertNotCalled(suite.T(), "NextSequenceNumber", mock.Anything, mock.Anything)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "SaveTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCreateTrip_CreditBreachStillCreates() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockTruckRepo.On("FindTruckByID", ctx, suite.truck.TruckID).Return(&suite.truck, nil).Once()
	suite.mockDriverRepo.On("FindDriverByID", ctx, suite.driver.DriverID).Return(&suite.driver, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()
	suite.mockAvailabilitySvc.On("IsAvailable", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Twice()
	suite.mockCreditChecker.On("CreditCheck", ctx, suite.client.ClientID, req.TripCharges).Return(false, nil).Once()
	suite.mockSequenceSvc.On("NextSequenceNumber", ctx, "TR").Return("TR202608310002", nil).Once()
	suite.mockTripRepo.On("SaveTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent")).Return(nil).Once()

	trip, err := suite.service.CreateTrip(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(trip)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

// --- StartTrip ---

func (suite *TripServiceTestSuite) plannedTrip() *domain.Trip {
	start := time.Now().UTC().Add(-time.Minute)
	return &domain.Trip{
		TripID:        uuid.NewString(),
		TripNumber:    "TR202608310003",
		TruckID:       suite.truck.TruckID,
		DriverID:      suite.driver.DriverID,
		ClientID:      suite.client.ClientID,
		PlannedStart:  start,
		PlannedEnd:    start.Add(48 * time.Hour),
		Status:        domain.TripPlanned,
		TripCharges:   decimal.NewFromInt(45000),
		AdvanceAmount: decimal.NewFromInt(10000),
	}
}

func (suite *TripServiceTestSuite) TestStartTrip_Success() {
	ctx := context.Background()
	trip := suite.plannedTrip()

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()
	suite.mockTripRepo.On("TransitionTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent")).Return(nil).Once()

	started, err := suite.service.StartTrip(ctx, trip.TripID, dto.StartTripRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TripRunning, started.Status)
	suite.Require().NotNil(started.ActualStart)
	suite.Equal(suite.userID, started.LastUpdatedBy)

	event := suite.mockTripRepo.Calls[1].Arguments.Get(2).(domain.TripEvent)
	suite.Equal(domain.TripPlanned, event.FromStatus)
	suite.Equal(domain.TripRunning, event.ToStatus)

	suite.mockTripRepo.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestStartTrip_AlreadyCompleted() {
	ctx := context.Background()
	trip := suite.plannedTrip()
	trip.Status = domain.TripCompleted

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()

	_, err := suite.service.StartTrip(ctx, trip.TripID, dto.StartTripRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "TransitionTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestStartTrip_BackdatedBeyondGrace() {
	ctx := context.Background()
	trip := suite.plannedTrip()
	trip.PlannedStart = time.Now().UTC().Add(-10 * time.Hour)
	trip.PlannedEnd = trip.PlannedStart.Add(48 * time.Hour)
	backdated := time.Now().UTC().Add(-9 * time.Hour)

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()

	_, err := suite.service.StartTrip(ctx, trip.TripID, dto.StartTripRequest{ActualStart: &backdated}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "TransitionTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestStartTrip_BackdatedWithinGrace() {
	ctx := context.Background()
	trip := suite.plannedTrip()
	trip.PlannedStart = time.Now().UTC().Add(72 * time.Hour)
	trip.PlannedEnd = trip.PlannedStart.Add(24 * time.Hour)
	backdated := time.Now().UTC().Add(-30 * time.Minute)

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()
	suite.mockTripRepo.On("TransitionTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent")).Return(nil).Once()

	started, err := suite.service.StartTrip(ctx, trip.TripID, dto.StartTripRequest{ActualStart: &backdated}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(started.ActualStart)
	suite.True(started.ActualStart.Equal(backdated))
	suite.mockTripRepo.AssertExpectations(suite.T())
}

// --- CompleteTrip ---

func (suite *TripServiceTestSuite) runningTrip() *domain.Trip {
	trip := suite.plannedTrip()
	actualStart := time.Now().UTC().Add(-24 * time.Hour)
	trip.Status = domain.TripRunning
	trip.ActualStart = &actualStart
	return trip
}

func (suite *TripServiceTestSuite) TestCompleteTrip_Success() {
	ctx := context.Background()
	trip := suite.runningTrip()
	req := dto.CompleteTripRequest{
		DistanceKM:    decimal.NewFromInt(712),
		FuelConsumedL: decimal.NewFromInt(180),
		FuelCost:      decimal.NewFromInt(16500),
		TollCharges:   decimal.NewFromInt(2100),
	}

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()
	suite.mockTripRepo.On("CompleteTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent"), (*domain.Invoice)(nil)).Return(nil).Once()

	completed, err := suite.service.CompleteTrip(ctx, trip.TripID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TripCompleted, completed.Status)
	suite.Require().NotNil(completed.ActualEnd)
	suite.True(completed.DistanceKM.Equal(req.DistanceKM))
	suite.Nil(completed.InvoiceID)

	suite.mockTripRepo.AssertExpectations(suite.T())
	suite.mockSequenceSvc.AssertNotCalled(suite.T(), "NextSequenceNumber", mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCompleteTrip_AutoInvoice() {
	ctx := context.Background()
	trip := suite.runningTrip()
	trip.AutoInvoice = true
	req := dto.CompleteTripRequest{DistanceKM: decimal.NewFromInt(712)}
	invoiceNumber := "INV202608310001"

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()
	suite.mockSequenceSvc.On("NextSequenceNumber", ctx, "INV").Return(invoiceNumber, nil).Once()
	suite.mockTripRepo.On("CompleteTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent"), mock.AnythingOfType("*domain.Invoice")).Return(nil).Once()

	completed, err := suite.service.CompleteTrip(ctx, trip.TripID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(completed.InvoiceID)

	invoice := suite.mockTripRepo.Calls[1].Arguments.Get(3).(*domain.Invoice)
	suite.Require().NotNil(invoice)
	suite.Equal(invoiceNumber, invoice.InvoiceNumber)
	suite.Equal(*completed.InvoiceID, invoice.InvoiceID)
	suite.Equal(trip.ClientID, invoice.ClientID)
	suite.True(invoice.FreightCharges.Equal(trip.TripCharges))
	suite.True(invoice.AdvanceReceived.Equal(trip.AdvanceAmount))
	suite.True(invoice.BalanceAmount.Equal(trip.TripCharges.Sub(trip.AdvanceAmount)))
	suite.Equal(domain.PaymentPartial, invoice.PaymentStatus)

	suite.mockTripRepo.AssertExpectations(suite.T())
	suite.mockSequenceSvc.AssertExpectations(suite.T())
}

func (suite *TripServiceTestSuite) TestCompleteTrip_NegativeDistance() {
	ctx := context.Background()
	trip := suite.runningTrip()
	req := dto.CompleteTripRequest{DistanceKM: decimal.NewFromInt(-10)}

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()

	_, err := suite.service.CompleteTrip(ctx, trip.TripID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "CompleteTrip", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestCompleteTrip_FromPlanned() {
	ctx := context.Background()
	trip := suite.plannedTrip()

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()

	_, err := suite.service.CompleteTrip(ctx, trip.TripID, dto.CompleteTripRequest{DistanceKM: decimal.NewFromInt(10)}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

// --- CancelTrip ---

func (suite *TripServiceTestSuite) TestCancelTrip_FromRunning() {
	ctx := context.Background()
	trip := suite.runningTrip()

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()
	suite.mockTripRepo.On("TransitionTrip", ctx, mock.AnythingOfType("domain.Trip"), mock.AnythingOfType("domain.TripEvent")).Return(nil).Once()

	cancelled, err := suite.service.CancelTrip(ctx, trip.TripID, dto.CancelTripRequest{Remarks: "client cancelled"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TripCancelled, cancelled.Status)

	event := suite.mockTripRepo.Calls[1].Arguments.Get(2).(domain.TripEvent)
	suite.Equal(domain.TripRunning, event.FromStatus)
	suite.Equal(domain.TripCancelled, event.ToStatus)
	suite.Equal("client cancelled", event.Remarks)
}

func (suite *TripServiceTestSuite) TestCancelTrip_Terminal() {
	ctx := context.Background()
	trip := suite.plannedTrip()
	trip.Status = domain.TripCancelled

	suite.mockTripRepo.On("FindTripByID", ctx, trip.TripID).Return(trip, nil).Once()

	_, err := suite.service.CancelTrip(ctx, trip.TripID, dto.CancelTripRequest{Remarks: "again"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

// --- ListTrips ---

func (suite *TripServiceTestSuite) TestListTrips_UnknownStatus() {
	ctx := context.Background()
	bad := "SHIPPED"

	_, err := suite.service.ListTrips(ctx, dto.ListTripsParams{Status: &bad})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "ListTrips", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripServiceTestSuite) TestListTrips_ClampsLimit() {
	ctx := context.Background()

	suite.mockTripRepo.On("ListTrips", ctx, (*domain.TripStatus)(nil), 100, (*string)(nil)).Return([]domain.Trip{}, nil, nil).Once()

	resp, err := suite.service.ListTrips(ctx, dto.ListTripsParams{Limit: 500})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Empty(resp.Trips)
	suite.mockTripRepo.AssertExpectations(suite.T())
}

func TestTripServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripServiceTestSuite))
}
