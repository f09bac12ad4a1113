package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

var (
	ErrPlannedWindowInvalid  = errors.New("planned end must not be before planned start")
	ErrAdvanceExceedsCharges = errors.New("advance amount cannot exceed trip charges")
	ErrBackdatedStart        = errors.New("actual start is backdated beyond the allowed grace period")
	ErrEndBeforeStart        = errors.New("actual end must not be before the trip start")
	ErrTruckUnavailable      = fmt.Errorf("truck %w", apperrors.ErrResourceUnavailable)
	ErrDriverUnavailable     = fmt.Errorf("driver %w", apperrors.ErrResourceUnavailable)
)

const (
	tripNumberPrefix    = "TR"
	invoiceNumberPrefix = "INV"
)

// tripService drives the trip lifecycle: PLANNED -> RUNNING -> COMPLETED, with
// CANCELLED reachable from the two non-terminal states. Every transition is one
// atomic repository call that also appends the trip event.
type tripService struct {
	BaseService
	tripRepo        portsrepo.TripRepositoryFacade
	truckRepo       portsrepo.TruckReader
	driverRepo      portsrepo.DriverReader
	clientRepo      portsrepo.ClientReader
	availabilitySvc portssvc.AvailabilitySvcFacade
	sequenceSvc     portssvc.SequenceSvcFacade
	creditChecker   portssvc.CreditCheckerSvc

	// startGrace bounds how far in the past an actual start may be backdated.
	startGrace time.Duration
	now        func() time.Time // injectable for tests
}

// NewTripService creates a new TripService.
func NewTripService(
	tripRepo portsrepo.TripRepositoryFacade,
	truckRepo portsrepo.TruckReader,
	driverRepo portsrepo.DriverReader,
	clientRepo portsrepo.ClientReader,
	availabilitySvc portssvc.AvailabilitySvcFacade,
	sequenceSvc portssvc.SequenceSvcFacade,
	creditChecker portssvc.CreditCheckerSvc,
	startGrace time.Duration,
) portssvc.TripSvcFacade {
	return &tripService{
		tripRepo:        tripRepo,
		truckRepo:       truckRepo,
		driverRepo:      driverRepo,
		clientRepo:      clientRepo,
		availabilitySvc: availabilitySvc,
		sequenceSvc:     sequenceSvc,
		creditChecker:   creditChecker,
		startGrace:      startGrace,
		now:             time.Now,
	}
}

var _ portssvc.TripSvcFacade = (*tripService)(nil)

// CreateTrip implements portssvc.TripLifecycleSvc.
func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error) {
	if req.PlannedEnd.Before(req.PlannedStart) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrPlannedWindowInvalid)
	}
	if req.TripCharges.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: trip charges must be positive", apperrors.ErrInvalidAmount)
	}
	if req.AdvanceAmount.IsNegative() {
		return nil, fmt.Errorf("%w: advance amount must not be negative", apperrors.ErrInvalidAmount)
	}
	if req.AdvanceAmount.GreaterThan(req.TripCharges) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidAmount, ErrAdvanceExceedsCharges)
	}

	truck, err := s.truckRepo.FindTruckByID(ctx, req.TruckID)
	if err != nil {
		return nil, err
	}
	if !truck.IsActive {
		return nil, fmt.Errorf("%w: truck %s", apperrors.ErrInactiveResource, req.TruckID)
	}

	driver, err := s.driverRepo.FindDriverByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if !driver.IsActive {
		return nil, fmt.Errorf("%w: driver %s", apperrors.ErrInactiveResource, req.DriverID)
	}
	if driver.LicenseExpiry != nil && driver.LicenseExpiry.Before(req.PlannedStart) {
		s.LogWarn(ctx, "driver license expires before planned start", "driver_id", req.DriverID, "license_expiry", *driver.LicenseExpiry)
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !client.IsActive {
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrInactiveResource, req.ClientID)
	}

	// Availability pre-check. The repository re-validates under row locks, so a
	// race between two creations still cannot double-book; this check exists to
	// fail fast with the right error before consuming a sequence number.
	free, err := s.availabilitySvc.IsAvailable(ctx, req.TruckID, domain.ResourceTruck, req.PlannedStart, req.PlannedEnd, nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrTruckUnavailable
	}
	free, err = s.availabilitySvc.IsAvailable(ctx, req.DriverID, domain.ResourceDriver, req.PlannedStart, req.PlannedEnd, nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrDriverUnavailable
	}

	// Advisory only: the trip is created regardless, the breach is logged for
	// the back office to chase.
	withinLimit, err := s.creditChecker.CreditCheck(ctx, req.ClientID, req.TripCharges)
	if err != nil {
		return nil, err
	}
	if !withinLimit {
		s.LogWarn(ctx, "trip exceeds client credit limit", "client_id", req.ClientID, "trip_charges", req.TripCharges.String())
	}

	tripNumber, err := s.sequenceSvc.NextSequenceNumber(ctx, tripNumberPrefix)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	trip := domain.Trip{
		TripID:        uuid.NewString(),
		TripNumber:    tripNumber,
		TruckID:       req.TruckID,
		DriverID:      req.DriverID,
		ClientID:      req.ClientID,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		PlannedStart:  req.PlannedStart,
		PlannedEnd:    req.PlannedEnd,
		Status:        domain.TripPlanned,
		TripCharges:   req.TripCharges,
		AdvanceAmount: req.AdvanceAmount,
		DistanceKM:    decimal.Zero,
		FuelConsumedL: decimal.Zero,
		FuelCost:      decimal.Zero,
		TollCharges:   decimal.Zero,
		OtherExpenses: decimal.Zero,
		AutoInvoice:   req.AutoInvoice,
		Remarks:       req.Remarks,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	event := domain.TripEvent{
		EventID:    uuid.NewString(),
		TripID:     trip.TripID,
		ToStatus:   domain.TripPlanned,
		OccurredAt: now,
		ActorID:    creatorUserID,
		Remarks:    req.Remarks,
	}

	if err := s.tripRepo.SaveTrip(ctx, trip, event); err != nil {
		s.LogError(ctx, err, "failed to save trip", "trip_number", tripNumber)
		return nil, err
	}

	s.LogInfo(ctx, "trip created", "trip_id", trip.TripID, "trip_number", tripNumber)
	return &trip, nil
}

// StartTrip implements portssvc.TripLifecycleSvc.
func (s *tripService) StartTrip(ctx context.Context, tripID string, req dto.StartTripRequest, userID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Status.CanTransitionTo(domain.TripRunning) {
		return nil, fmt.Errorf("%w: cannot start a %s trip", apperrors.ErrInvalidStateTransition, trip.Status)
	}

	now := s.now().UTC()
	actualStart := now
	if req.ActualStart != nil {
		actualStart = req.ActualStart.UTC()
	}
	if actualStart.Before(now.Add(-s.startGrace)) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrBackdatedStart)
	}

	fromStatus := trip.Status
	trip.Status = domain.TripRunning
	trip.ActualStart = &actualStart
	trip.LastUpdatedAt = now
	trip.LastUpdatedBy = userID

	event := domain.TripEvent{
		EventID:    uuid.NewString(),
		TripID:     trip.TripID,
		FromStatus: fromStatus,
		ToStatus:   domain.TripRunning,
		OccurredAt: now,
		ActorID:    userID,
		Remarks:    req.Remarks,
	}

	if err := s.tripRepo.TransitionTrip(ctx, *trip, event); err != nil {
		s.LogError(ctx, err, "failed to start trip", "trip_id", tripID)
		return nil, err
	}

	s.LogInfo(ctx, "trip started", "trip_id", tripID)
	return trip, nil
}

// CompleteTrip implements portssvc.TripLifecycleSvc.
//
// Completion is the one transition with side effects: the truck odometer moves
// by the trip distance, and when the trip is flagged for auto-invoicing an
// invoice is raised with the trip charges as freight and the trip advance as
// advance received. All of it commits or none of it does.
func (s *tripService) CompleteTrip(ctx context.Context, tripID string, req dto.CompleteTripRequest, userID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Status.CanTransitionTo(domain.TripCompleted) {
		return nil, fmt.Errorf("%w: cannot complete a %s trip", apperrors.ErrInvalidStateTransition, trip.Status)
	}

	if req.DistanceKM.IsNegative() {
		return nil, fmt.Errorf("%w: distance must not be negative", apperrors.ErrValidation)
	}
	for name, amt := range map[string]decimal.Decimal{
		"fuelConsumedL": req.FuelConsumedL,
		"fuelCost":      req.FuelCost,
		"tollCharges":   req.TollCharges,
		"otherExpenses": req.OtherExpenses,
	} {
		if amt.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrInvalidAmount, name)
		}
	}

	now := s.now().UTC()
	actualEnd := now
	if req.ActualEnd != nil {
		actualEnd = req.ActualEnd.UTC()
	}
	if actualEnd.Before(trip.EffectiveStart()) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrEndBeforeStart)
	}

	fromStatus := trip.Status
	trip.Status = domain.TripCompleted
	trip.ActualEnd = &actualEnd
	trip.DistanceKM = req.DistanceKM
	trip.FuelConsumedL = req.FuelConsumedL
	trip.FuelCost = req.FuelCost
	trip.TollCharges = req.TollCharges
	trip.OtherExpenses = req.OtherExpenses
	trip.LastUpdatedAt = now
	trip.LastUpdatedBy = userID

	var invoice *domain.Invoice
	if trip.AutoInvoice {
		invoiceNumber, err := s.sequenceSvc.NextSequenceNumber(ctx, invoiceNumberPrefix)
		if err != nil {
			return nil, err
		}
		inv := buildTripInvoice(trip, invoiceNumber, userID, now)
		invoice = &inv
		trip.InvoiceID = &inv.InvoiceID
	}

	event := domain.TripEvent{
		EventID:    uuid.NewString(),
		TripID:     trip.TripID,
		FromStatus: fromStatus,
		ToStatus:   domain.TripCompleted,
		OccurredAt: now,
		ActorID:    userID,
		Remarks:    req.Remarks,
	}

	if err := s.tripRepo.CompleteTrip(ctx, *trip, event, invoice); err != nil {
		s.LogError(ctx, err, "failed to complete trip", "trip_id", tripID)
		return nil, err
	}

	s.LogInfo(ctx, "trip completed", "trip_id", tripID, "auto_invoice", trip.AutoInvoice)
	return trip, nil
}

// CancelTrip implements portssvc.TripLifecycleSvc.
func (s *tripService) CancelTrip(ctx context.Context, tripID string, req dto.CancelTripRequest, userID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Status.CanTransitionTo(domain.TripCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel a %s trip", apperrors.ErrInvalidStateTransition, trip.Status)
	}

	now := s.now().UTC()
	fromStatus := trip.Status
	trip.Status = domain.TripCancelled
	trip.LastUpdatedAt = now
	trip.LastUpdatedBy = userID

	event := domain.TripEvent{
		EventID:    uuid.NewString(),
		TripID:     trip.TripID,
		FromStatus: fromStatus,
		ToStatus:   domain.TripCancelled,
		OccurredAt: now,
		ActorID:    userID,
		Remarks:    req.Remarks,
	}

	if err := s.tripRepo.TransitionTrip(ctx, *trip, event); err != nil {
		s.LogError(ctx, err, "failed to cancel trip", "trip_id", tripID)
		return nil, err
	}

	s.LogInfo(ctx, "trip cancelled", "trip_id", tripID)
	return trip, nil
}

// buildTripInvoice derives the auto-raised invoice from a completed trip.
func buildTripInvoice(trip *domain.Trip, invoiceNumber, userID string, now time.Time) domain.Invoice {
	total := trip.TripCharges
	return domain.Invoice{
		InvoiceID:        uuid.NewString(),
		InvoiceNumber:    invoiceNumber,
		TripID:           trip.TripID,
		ClientID:         trip.ClientID,
		InvoiceDate:      now,
		FreightCharges:   trip.TripCharges,
		LoadingCharges:   decimal.Zero,
		UnloadingCharges: decimal.Zero,
		OtherCharges:     decimal.Zero,
		TaxAmount:        decimal.Zero,
		TotalCharges:     total,
		AdvanceReceived:  trip.AdvanceAmount,
		BalanceAmount:    total.Sub(trip.AdvanceAmount),
		PaymentStatus:    domain.DerivePaymentStatus(total, trip.AdvanceAmount),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// GetTripByID implements portssvc.TripReaderSvc.
func (s *tripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	return s.tripRepo.FindTripByID(ctx, tripID)
}

// ListTrips implements portssvc.TripReaderSvc.
func (s *tripService) ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	var status *domain.TripStatus
	if params.Status != nil {
		st := domain.TripStatus(*params.Status)
		switch st {
		case domain.TripPlanned, domain.TripRunning, domain.TripCompleted, domain.TripCancelled:
			status = &st
		default:
			return nil, fmt.Errorf("%w: unknown trip status %q", apperrors.ErrValidation, *params.Status)
		}
	}

	trips, nextToken, err := s.tripRepo.ListTrips(ctx, status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	resp := dto.ToListTripsResponse(trips, nextToken)
	return &resp, nil
}

// ListTripEvents implements portssvc.TripReaderSvc.
func (s *tripService) ListTripEvents(ctx context.Context, tripID string) ([]domain.TripEvent, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.tripRepo.FindEventsByTripID(ctx, tripID)
}
