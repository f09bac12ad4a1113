package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// TripReaderSvc defines read operations on trips
type TripReaderSvc interface {
	// GetTripByID retrieves a specific trip.
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves a paginated list of trips.
	ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error)

	// ListTripEvents retrieves a trip's transition history, oldest first.
	ListTripEvents(ctx context.Context, tripID string) ([]domain.TripEvent, error)
}

// TripLifecycleSvc drives the trip state machine. Every transition is atomic
// with its side effects and appends one event to the trip history.
type TripLifecycleSvc interface {
	// CreateTrip validates resources and availability, assigns a trip number and
	// persists a new PLANNED trip.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, creatorUserID string) (*domain.Trip, error)

	// StartTrip moves a PLANNED trip to RUNNING.
	StartTrip(ctx context.Context, tripID string, req dto.StartTripRequest, userID string) (*domain.Trip, error)

	// CompleteTrip moves a RUNNING trip to COMPLETED, advances the truck odometer
	// and opens an invoice when the trip is flagged for auto-invoicing.
	CompleteTrip(ctx context.Context, tripID string, req dto.CompleteTripRequest, userID string) (*domain.Trip, error)

	// CancelTrip moves a PLANNED or RUNNING trip to CANCELLED.
	CancelTrip(ctx context.Context, tripID string, req dto.CancelTripRequest, userID string) (*domain.Trip, error)
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripLifecycleSvc
}
