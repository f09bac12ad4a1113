package repositories

import "context"

// SequenceRepository hands out date-scoped sequential suffixes.
type SequenceRepository interface {
	// NextValue atomically increments and returns the counter for the given stem
	// (prefix + date). Two concurrent calls for the same stem never observe the
	// same value; the first call for a new stem returns 1.
	NextValue(ctx context.Context, stem string) (int64, error)
}
