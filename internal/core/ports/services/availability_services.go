package services

import (
	"context"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
)

// AvailabilitySvcFacade answers whether a truck or driver is free across a
// closed time window. Touching endpoints count as a conflict.
type AvailabilitySvcFacade interface {
	// IsAvailable reports whether the resource has no PLANNED or RUNNING trip
	// overlapping [windowStart, windowEnd]. excludeTripID lets an update ignore
	// the trip being edited. Unknown resources fail with apperrors.ErrNotFound.
	IsAvailable(ctx context.Context, resourceID string, kind domain.ResourceKind, windowStart, windowEnd time.Time, excludeTripID *string) (bool, error)
}
