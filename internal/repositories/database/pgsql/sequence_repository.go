package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) *PgxSequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextValue atomically increments and returns the counter for a stem. The
// upsert resolves concurrent callers on the stem's row lock, so no two calls
// ever observe the same value and the first call for a new stem returns 1.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, stem string) (int64, error) {
	query := `
		INSERT INTO sequences (stem, last_value)
		VALUES ($1, 1)
		ON CONFLICT (stem) DO UPDATE SET last_value = sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, stem).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to advance sequence for stem %s: %w", stem, err)
	}
	return next, nil
}
