package services

import "context"

// SequenceSvcFacade produces human-readable, date-scoped sequential identifiers
// such as TR202601150001. Unique under concurrent callers for the same day.
type SequenceSvcFacade interface {
	// NextSequenceNumber returns prefix + yyyymmdd + zero-padded next suffix.
	NextSequenceNumber(ctx context.Context, prefix string) (string, error)
}
