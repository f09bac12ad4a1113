package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/SscSPs/fleet_logistics_app/internal/handlers"
	"github.com/SscSPs/fleet_logistics_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

func (m *MockTripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTripsResponse), args.Error(1)
}

func (m *MockTripService) ListTripEvents(ctx context.Context, tripID string) ([]domain.TripEvent, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripEvent), args.Error(1)
}

func (m *MockTripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) StartTrip(ctx context.Context, tripID string, req dto.StartTripRequest, userID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) CompleteTrip(ctx context.Context, tripID string, req dto.CompleteTripRequest, userID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) CancelTrip(ctx context.Context, tripID string, req dto.CancelTripRequest, userID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
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

// --- Test Suite ---
type TripHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTripService     *MockTripService
	mockAvailabilitySvc *MockAvailabilityService
	jwtSecret           string
	userID              string
}

func (suite *TripHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fla-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TripHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockTripService = new(MockTripService)
	suite.mockAvailabilitySvc = new(MockAvailabilityService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skips swagger routes
	}
	container := &portssvc.ServiceContainer{
		Trip:         suite.mockTripService,
		Availability: suite.mockAvailabilitySvc,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *TripHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TripHandlerTestSuite) sampleTrip() *domain.Trip {
	start := time.Now().UTC().Add(24 * time.Hour)
	return &domain.Trip{
		TripID:        uuid.NewString(),
		TripNumber:    "TR202608310001",
		TruckID:       uuid.NewString(),
		DriverID:      uuid.NewString(),
		ClientID:      uuid.NewString(),
		FromLocation:  "Pune",
		ToLocation:    "Nagpur",
		PlannedStart:  start,
		PlannedEnd:    start.Add(48 * time.Hour),
		Status:        domain.TripPlanned,
		TripCharges:   decimal.NewFromInt(45000),
		AdvanceAmount: decimal.NewFromInt(10000),
	}
}

// --- Test Cases ---

func (suite *TripHandlerTestSuite) TestCreateTrip_Success() {
	trip := suite.sampleTrip()
	reqBody := dto.CreateTripRequest{
		TruckID:      trip.TruckID,
		DriverID:     trip.DriverID,
		ClientID:     trip.ClientID,
		FromLocation: trip.FromLocation,
		ToLocation:   trip.ToLocation,
		PlannedStart: trip.PlannedStart,
		PlannedEnd:   trip.PlannedEnd,
		TripCharges:  trip.TripCharges,
	}

	suite.mockTripService.On("CreateTrip", mock.Anything, mock.AnythingOfType("dto.CreateTripRequest"), suite.userID).Return(trip, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/trips", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TripResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(trip.TripID, resp.TripID)
	suite.Equal(trip.TripNumber, resp.TripNumber)
	suite.Equal(domain.TripPlanned, resp.Status)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestCreateTrip_ResourceUnavailable() {
	trip := suite.sampleTrip()
	reqBody := dto.CreateTripRequest{
		TruckID:      trip.TruckID,
		DriverID:     trip.DriverID,
		ClientID:     trip.ClientID,
		FromLocation: trip.FromLocation,
		ToLocation:   trip.ToLocation,
		PlannedStart: trip.PlannedStart,
		PlannedEnd:   trip.PlannedEnd,
		TripCharges:  trip.TripCharges,
	}

	suite.mockTripService.On("CreateTrip", mock.Anything, mock.AnythingOfType("dto.CreateTripRequest"), suite.userID).
		Return(nil, fmt.Errorf("truck %w", apperrors.ErrResourceUnavailable)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/trips", reqBody)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TripHandlerTestSuite) TestCreateTrip_MissingFields() {
	w := suite.doJSON(http.MethodPost, "/api/v1/trips", map[string]string{"truckID": "only"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "CreateTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripHandlerTestSuite) TestGetTrip_NotFound() {
	tripID := uuid.NewString()
	suite.mockTripService.On("GetTripByID", mock.Anything, tripID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/trips/"+tripID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TripHandlerTestSuite) TestStartTrip_InvalidTransition() {
	tripID := uuid.NewString()
	suite.mockTripService.On("StartTrip", mock.Anything, tripID, mock.AnythingOfType("dto.StartTripRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: cannot start a COMPLETED trip", apperrors.ErrInvalidStateTransition)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/trips/"+tripID+"/start", map[string]any{})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TripHandlerTestSuite) TestCancelTrip_Success() {
	trip := suite.sampleTrip()
	trip.Status = domain.TripCancelled

	suite.mockTripService.On("CancelTrip", mock.Anything, trip.TripID, mock.AnythingOfType("dto.CancelTripRequest"), suite.userID).Return(trip, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/trips/"+trip.TripID+"/cancel", dto.CancelTripRequest{Remarks: "client cancelled"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TripResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.TripCancelled, resp.Status)
}

func (suite *TripHandlerTestSuite) TestCheckAvailability_Free() {
	resourceID := uuid.NewString()
	windowStart := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(48 * time.Hour)

	suite.mockAvailabilitySvc.On("IsAvailable", mock.Anything, resourceID, domain.ResourceTruck, windowStart, windowEnd, (*string)(nil)).Return(true, nil).Once()

	path := fmt.Sprintf("/api/v1/availability?resourceID=%s&kind=TRUCK&windowStart=%s&windowEnd=%s",
		resourceID, windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	w := suite.doJSON(http.MethodGet, path, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]bool
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp["available"])
	suite.mockAvailabilitySvc.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestMissingAuthHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "ListTrips", mock.Anything, mock.Anything)
}

func TestTripHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}
