package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
)

// availabilityService answers resource-free questions over closed time windows.
// COMPLETED and CANCELLED trips never block a window; a RUNNING trip without an
// actual end is open-ended and blocks everything from its start onwards.
type availabilityService struct {
	BaseService
	tripRepo   portsrepo.TripReader
	truckRepo  portsrepo.TruckReader
	driverRepo portsrepo.DriverReader
}

// NewAvailabilityService creates a new AvailabilityService.
func NewAvailabilityService(tripRepo portsrepo.TripReader, truckRepo portsrepo.TruckReader, driverRepo portsrepo.DriverReader) portssvc.AvailabilitySvcFacade {
	return &availabilityService{
		tripRepo:   tripRepo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
	}
}

var _ portssvc.AvailabilitySvcFacade = (*availabilityService)(nil)

// windowOverlaps reports whether the closed interval [wStart, wEnd] intersects
// the trip's effective occupancy. Intervals that merely touch at an endpoint
// still count as overlapping: a truck cannot end one trip and start the next
// in the same instant.
func windowOverlaps(wStart, wEnd time.Time, trip *domain.Trip) bool {
	tripStart := trip.EffectiveStart()
	tripEnd, bounded := trip.EffectiveEnd()

	if wEnd.Before(tripStart) {
		return false
	}
	if !bounded {
		// Open-ended RUNNING trip occupies [tripStart, +inf).
		return true
	}
	return !wStart.After(tripEnd)
}

// IsAvailable implements portssvc.AvailabilitySvcFacade.
func (s *availabilityService) IsAvailable(ctx context.Context, resourceID string, kind domain.ResourceKind, windowStart, windowEnd time.Time, excludeTripID *string) (bool, error) {
	if windowEnd.Before(windowStart) {
		return false, fmt.Errorf("%w: window end is before window start", apperrors.ErrValidation)
	}

	// The resource must exist before we reason about its calendar.
	switch kind {
	case domain.ResourceTruck:
		if _, err := s.truckRepo.FindTruckByID(ctx, resourceID); err != nil {
			return false, err
		}
	case domain.ResourceDriver:
		if _, err := s.driverRepo.FindDriverByID(ctx, resourceID); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("%w: unknown resource kind %q", apperrors.ErrValidation, kind)
	}

	trips, err := s.tripRepo.FindActiveTripsForResource(ctx, kind, resourceID, excludeTripID)
	if err != nil {
		s.LogError(ctx, err, "failed to load active trips for availability check", "resource_id", resourceID, "kind", string(kind))
		return false, fmt.Errorf("failed to load active trips: %w", err)
	}

	for i := range trips {
		if windowOverlaps(windowStart, windowEnd, &trips[i]) {
			return false, nil
		}
	}
	return true, nil
}
