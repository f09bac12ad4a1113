package repositories

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a specific trip by its unique identifier.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves a paginated list of trips using token-based pagination,
	// optionally filtered by status.
	ListTrips(ctx context.Context, status *domain.TripStatus, limit int, nextToken *string) ([]domain.Trip, *string, error)

	// FindActiveTripsForResource retrieves every PLANNED or RUNNING trip that
	// assigns the given truck or driver, excluding excludeTripID when non-nil.
	// COMPLETED and CANCELLED trips never participate in availability.
	FindActiveTripsForResource(ctx context.Context, kind domain.ResourceKind, resourceID string, excludeTripID *string) ([]domain.Trip, error)

	// FindEventsByTripID retrieves the append-only transition history of a trip,
	// oldest first.
	FindEventsByTripID(ctx context.Context, tripID string) ([]domain.TripEvent, error)
}

// TripWriter defines write operations for trip data. Each method is a single
// atomic unit against the store; the check-and-insert pair for availability runs
// under the same transaction and resource row locks as the insert.
type TripWriter interface {
	// SaveTrip persists a new PLANNED trip together with its creation event.
	// The truck and driver rows are locked for the duration of the transaction and
	// the overlap guard is re-evaluated under those locks, so two concurrent
	// creations for the same resource window cannot both succeed. Returns
	// apperrors.ErrResourceUnavailable on conflict.
	SaveTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent) error

	// TransitionTrip applies a Start or Cancel transition. The trip row is locked
	// and its stored status compared against event.FromStatus; a concurrent
	// transition that won the race surfaces as apperrors.ErrInvalidStateTransition.
	TransitionTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent) error

	// CompleteTrip applies the COMPLETED transition with its side effects in one
	// transaction: trip update, truck odometer increment by trip distance, and,
	// when invoice is non-nil, invoice insert plus client outstanding-balance
	// adjustment. If any step fails the whole completion rolls back and the trip
	// remains RUNNING.
	CompleteTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent, invoice *domain.Invoice) error
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
}

// TripRepositoryWithTx extends TripRepositoryFacade with transaction capabilities
type TripRepositoryWithTx interface {
	TripRepositoryFacade
	TransactionManager
}
