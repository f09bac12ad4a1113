package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
)

var ErrEmptySequencePrefix = errors.New("sequence prefix is required")

// sequenceService hands out date-scoped business identifiers like TR202601150001.
// The counter itself lives in the store; the repository increment is atomic, so
// concurrent callers for the same stem always get distinct suffixes.
type sequenceService struct {
	BaseService
	sequenceRepo portsrepo.SequenceRepository
	now          func() time.Time // injectable for tests
}

// NewSequenceService creates a new SequenceService.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepository) portssvc.SequenceSvcFacade {
	return &sequenceService{
		sequenceRepo: sequenceRepo,
		now:          time.Now,
	}
}

var _ portssvc.SequenceSvcFacade = (*sequenceService)(nil)

// NextSequenceNumber returns prefix + yyyymmdd + zero-padded suffix. The suffix
// restarts at 1 for each new day and keeps growing past 9999 without truncation.
func (s *sequenceService) NextSequenceNumber(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", ErrEmptySequencePrefix
	}

	stem := prefix + s.now().UTC().Format("20060102")
	next, err := s.sequenceRepo.NextValue(ctx, stem)
	if err != nil {
		s.LogError(ctx, err, "failed to advance sequence", "stem", stem)
		return "", fmt.Errorf("failed to advance sequence %s: %w", stem, err)
	}

	return fmt.Sprintf("%s%04d", stem, next), nil
}
