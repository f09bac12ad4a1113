package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSequenceRepository is an in-memory counter store, safe for concurrent use.
type fakeSequenceRepository struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func newFakeSequenceRepository() *fakeSequenceRepository {
	return &fakeSequenceRepository{values: make(map[string]int64)}
}

func (f *fakeSequenceRepository) NextValue(_ context.Context, stem string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.values[stem]++
	return f.values[stem], nil
}

func TestNextSequenceNumber_Format(t *testing.T) {
	repo := newFakeSequenceRepository()
	svc := services.NewSequenceService(repo)

	got, err := svc.NextSequenceNumber(context.Background(), "TR")
	require.NoError(t, err)

	today := time.Now().UTC().Format("20060102")
	assert.Equal(t, "TR"+today+"0001", got)
}

func TestNextSequenceNumber_Monotonic(t *testing.T) {
	repo := newFakeSequenceRepository()
	svc := services.NewSequenceService(repo)
	ctx := context.Background()

	first, err := svc.NextSequenceNumber(ctx, "INV")
	require.NoError(t, err)
	second, err := svc.NextSequenceNumber(ctx, "INV")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Greater(t, second, first)
}

func TestNextSequenceNumber_IndependentPrefixes(t *testing.T) {
	repo := newFakeSequenceRepository()
	svc := services.NewSequenceService(repo)
	ctx := context.Background()

	tripNum, err := svc.NextSequenceNumber(ctx, "TR")
	require.NoError(t, err)
	invNum, err := svc.NextSequenceNumber(ctx, "INV")
	require.NoError(t, err)

	today := time.Now().UTC().Format("20060102")
	assert.Equal(t, "TR"+today+"0001", tripNum)
	assert.Equal(t, "INV"+today+"0001", invNum)
}

func TestNextSequenceNumber_EmptyPrefix(t *testing.T) {
	svc := services.NewSequenceService(newFakeSequenceRepository())

	_, err := svc.NextSequenceNumber(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrEmptySequencePrefix)
}

func TestNextSequenceNumber_RepoError(t *testing.T) {
	repo := newFakeSequenceRepository()
	repo.err = fmt.Errorf("connection reset")
	svc := services.NewSequenceService(repo)

	_, err := svc.NextSequenceNumber(context.Background(), "TR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to advance sequence")
}

// Fifty concurrent callers must each get a distinct number.
func TestNextSequenceNumber_Concurrent(t *testing.T) {
	repo := newFakeSequenceRepository()
	svc := services.NewSequenceService(repo)
	ctx := context.Background()

	const callers = 50
	results := make(chan string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := svc.NextSequenceNumber(ctx, "TR")
			assert.NoError(t, err)
			results <- num
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, callers)
	for num := range results {
		assert.False(t, seen[num], "duplicate sequence number %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, callers)
}

// Numbers past 9999 keep growing instead of wrapping or truncating.
func TestNextSequenceNumber_PastFourDigits(t *testing.T) {
	repo := newFakeSequenceRepository()
	svc := services.NewSequenceService(repo)
	ctx := context.Background()

	today := time.Now().UTC().Format("20060102")
	repo.mu.Lock()
	repo.values["TR"+today] = 9999
	repo.mu.Unlock()

	got, err := svc.NextSequenceNumber(ctx, "TR")
	require.NoError(t, err)
	assert.Equal(t, "TR"+today+"10000", got)
}
