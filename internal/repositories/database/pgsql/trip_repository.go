package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
	"github.com/SscSPs/fleet_logistics_app/internal/utils/mapping"
	"github.com/SscSPs/fleet_logistics_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTripRepository struct {
	BaseRepository
	truckRepo   *PgxTruckRepository
	invoiceRepo *PgxInvoiceRepository
}

func newPgxTripRepository(pool *pgxpool.Pool, truckRepo *PgxTruckRepository, invoiceRepo *PgxInvoiceRepository) *PgxTripRepository {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
		truckRepo:      truckRepo,
		invoiceRepo:    invoiceRepo,
	}
}

var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

const tripColumns = `trip_id, trip_number, truck_id, driver_id, client_id, from_location, to_location,
	planned_start, planned_end, actual_start, actual_end, status,
	trip_charges, advance_amount, distance_km, fuel_consumed_l, fuel_cost, toll_charges, other_expenses,
	auto_invoice, invoice_id, remarks, created_at, created_by, last_updated_at, last_updated_by`

func scanTrip(row pgx.Row) (models.Trip, error) {
	var m models.Trip
	err := row.Scan(
		&m.TripID,
		&m.TripNumber,
		&m.TruckID,
		&m.DriverID,
		&m.ClientID,
		&m.FromLocation,
		&m.ToLocation,
		&m.PlannedStart,
		&m.PlannedEnd,
		&m.ActualStart,
		&m.ActualEnd,
		&m.Status,
		&m.TripCharges,
		&m.AdvanceAmount,
		&m.DistanceKM,
		&m.FuelConsumedL,
		&m.FuelCost,
		&m.TollCharges,
		&m.OtherExpenses,
		&m.AutoInvoice,
		&m.InvoiceID,
		&m.Remarks,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTrip persists a new PLANNED trip together with its creation event.
// The assigned truck and driver rows are locked first and the overlap guard is
// re-evaluated under those locks, so two concurrent creations targeting the same
// resource window serialize on the row locks and the loser sees the winner's trip.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := lockResourceRow(ctx, tx, "trucks", "truck_id", trip.TruckID); err != nil {
		return err
	}
	if err := lockResourceRow(ctx, tx, "drivers", "driver_id", trip.DriverID); err != nil {
		return err
	}

	conflicts, err := countOverlappingTrips(ctx, tx, trip)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return fmt.Errorf("truck or driver already committed to an overlapping trip: %w", apperrors.ErrResourceUnavailable)
	}

	m := mapping.ToModelTrip(trip)
	insertQuery := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TripID, m.TripNumber, m.TruckID, m.DriverID, m.ClientID,
		m.FromLocation, m.ToLocation,
		m.PlannedStart, m.PlannedEnd, m.ActualStart, m.ActualEnd, m.Status,
		m.TripCharges, m.AdvanceAmount, m.DistanceKM,
		m.FuelConsumedL, m.FuelCost, m.TollCharges, m.OtherExpenses,
		m.AutoInvoice, m.InvoiceID, m.Remarks,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("trip number %s already exists: %w", m.TripNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if err := insertTripEventInTx(ctx, tx, event); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// lockResourceRow takes a FOR UPDATE lock on a truck or driver row so that
// concurrent trip creations for the same resource serialize.
func lockResourceRow(ctx context.Context, tx pgx.Tx, table, idColumn, id string) error {
	// Table and column names come from callers inside this package, never from input.
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE;`, idColumn, table, idColumn)
	var locked string
	if err := tx.QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s %s not found: %w", strings.TrimSuffix(table, "s"), id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock %s row %s: %w", table, id, err)
	}
	return nil
}

// countOverlappingTrips counts PLANNED/RUNNING trips whose effective window
// overlaps the new trip's planned window on either resource. Windows are closed
// intervals, so trips touching at an endpoint count as overlapping, and a
// RUNNING trip with no actual end is open-ended and conflicts with everything
// from its start onwards.
func countOverlappingTrips(ctx context.Context, tx pgx.Tx, trip domain.Trip) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM trips
		WHERE status IN ('PLANNED', 'RUNNING')
		  AND (truck_id = $1 OR driver_id = $2)
		  AND COALESCE(actual_start, planned_start) <= $4
		  AND (
		        (status = 'RUNNING' AND actual_end IS NULL)
		        OR COALESCE(actual_end, planned_end) >= $3
		  );
	`
	var count int
	err := tx.QueryRow(ctx, query, trip.TruckID, trip.DriverID, trip.PlannedStart, trip.PlannedEnd).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to check trip overlap: %w", err)
	}
	return count, nil
}

func insertTripEventInTx(ctx context.Context, tx pgx.Tx, event domain.TripEvent) error {
	m := mapping.ToModelTripEvent(event)
	query := `
		INSERT INTO trip_events (event_id, trip_id, from_status, to_status, occurred_at, actor_id, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.EventID, m.TripID, m.FromStatus, m.ToStatus, m.OccurredAt, m.ActorID, m.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip event: %w", err)
	}
	return nil
}

// lockTripStatus locks the trip row and returns its stored status.
func lockTripStatus(ctx context.Context, tx pgx.Tx, tripID string) (models.TripStatus, error) {
	var status models.TripStatus
	err := tx.QueryRow(ctx, `SELECT status FROM trips WHERE trip_id = $1 FOR UPDATE;`, tripID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("trip %s not found: %w", tripID, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to lock trip %s: %w", tripID, err)
	}
	return status, nil
}

// TransitionTrip applies a Start or Cancel transition. The stored status is
// compared against event.FromStatus under a row lock; a concurrent transition
// that won the race surfaces as ErrInvalidStateTransition.
func (r *PgxTripRepository) TransitionTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	storedStatus, err := lockTripStatus(ctx, tx, trip.TripID)
	if err != nil {
		return err
	}
	if storedStatus != models.TripStatus(event.FromStatus) {
		return fmt.Errorf("trip %s is %s, expected %s: %w", trip.TripID, storedStatus, event.FromStatus, apperrors.ErrInvalidStateTransition)
	}

	m := mapping.ToModelTrip(trip)
	query := `
		UPDATE trips
		SET status = $1, actual_start = $2, remarks = $3, last_updated_at = $4, last_updated_by = $5
		WHERE trip_id = $6;
	`
	_, err = tx.Exec(ctx, query,
		m.Status, m.ActualStart, m.Remarks, m.LastUpdatedAt, m.LastUpdatedBy, m.TripID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", m.TripID, err)
	}

	if err := insertTripEventInTx(ctx, tx, event); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// CompleteTrip applies the COMPLETED transition with its side effects in one
// transaction: trip update, odometer increment by the trip distance and, when
// invoice is non-nil, the invoice insert plus the client's outstanding-balance
// adjustment. Any failure rolls the whole completion back.
func (r *PgxTripRepository) CompleteTrip(ctx context.Context, trip domain.Trip, event domain.TripEvent, invoice *domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	storedStatus, err := lockTripStatus(ctx, tx, trip.TripID)
	if err != nil {
		return err
	}
	if storedStatus != models.TripStatus(event.FromStatus) {
		return fmt.Errorf("trip %s is %s, expected %s: %w", trip.TripID, storedStatus, event.FromStatus, apperrors.ErrInvalidStateTransition)
	}

	m := mapping.ToModelTrip(trip)
	query := `
		UPDATE trips
		SET status = $1, actual_end = $2, distance_km = $3,
		    fuel_consumed_l = $4, fuel_cost = $5, toll_charges = $6, other_expenses = $7,
		    invoice_id = $8, remarks = $9, last_updated_at = $10, last_updated_by = $11
		WHERE trip_id = $12;
	`
	_, err = tx.Exec(ctx, query,
		m.Status, m.ActualEnd, m.DistanceKM,
		m.FuelConsumedL, m.FuelCost, m.TollCharges, m.OtherExpenses,
		m.InvoiceID, m.Remarks, m.LastUpdatedAt, m.LastUpdatedBy, m.TripID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", m.TripID, err)
	}

	if err := insertTripEventInTx(ctx, tx, event); err != nil {
		return err
	}

	if err := r.truckRepo.IncrementOdometerInTx(ctx, tx, trip.TruckID, trip.DistanceKM, event.ActorID, event.OccurredAt); err != nil {
		return err
	}

	if invoice != nil {
		if err := r.invoiceRepo.InsertInvoiceInTx(ctx, tx, *invoice); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1;`
	m, err := scanTrip(r.Pool.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip by ID %s: %w", tripID, err)
	}
	d := mapping.ToDomainTrip(m)
	return &d, nil
}

// ListTrips retrieves trips newest first with token-based pagination over
// (created_at, trip_id). It fetches limit+1 rows to decide whether another page
// exists.
func (r *PgxTripRepository) ListTrips(ctx context.Context, status *domain.TripStatus, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + tripColumns + ` FROM trips`)

	args := []interface{}{}
	conditions := []string{}

	if status != nil {
		args = append(args, string(*status))
		conditions = append(conditions, `status = $`+strconv.Itoa(len(args)))
	}

	if nextToken != nil && *nextToken != "" {
		cursorCreatedAt, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		args = append(args, cursorCreatedAt)
		createdAtPos := len(args)
		args = append(args, cursorID)
		idPos := len(args)
		conditions = append(conditions, fmt.Sprintf(`(created_at, trip_id) < ($%d, $%d)`, createdAtPos, idPos))
	}

	if len(conditions) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(conditions, ` AND `))
	}

	args = append(args, limit+1)
	sb.WriteString(` ORDER BY created_at DESC, trip_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	modelTrips := []models.Trip{}
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		modelTrips = append(modelTrips, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating trip rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(modelTrips) > limit {
		modelTrips = modelTrips[:limit]
		last := modelTrips[len(modelTrips)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TripID)
		newNextToken = &token
	}

	return mapping.ToDomainTripSlice(modelTrips), newNextToken, nil
}

// FindActiveTripsForResource retrieves every PLANNED or RUNNING trip assigning
// the given truck or driver. COMPLETED and CANCELLED trips never participate in
// availability.
func (r *PgxTripRepository) FindActiveTripsForResource(ctx context.Context, kind domain.ResourceKind, resourceID string, excludeTripID *string) ([]domain.Trip, error) {
	var resourceColumn string
	switch kind {
	case domain.ResourceTruck:
		resourceColumn = "truck_id"
	case domain.ResourceDriver:
		resourceColumn = "driver_id"
	default:
		return nil, fmt.Errorf("unknown resource kind %q: %w", kind, apperrors.ErrValidation)
	}

	query := `SELECT ` + tripColumns + ` FROM trips WHERE ` + resourceColumn + ` = $1 AND status IN ('PLANNED', 'RUNNING')`
	args := []interface{}{resourceID}
	if excludeTripID != nil {
		args = append(args, *excludeTripID)
		query += ` AND trip_id <> $2`
	}
	query += ` ORDER BY planned_start ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active trips for %s %s: %w", kind, resourceID, err)
	}
	defer rows.Close()

	modelTrips := []models.Trip{}
	for rows.Next() {
		m, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		modelTrips = append(modelTrips, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", rows.Err())
	}

	return mapping.ToDomainTripSlice(modelTrips), nil
}

func (r *PgxTripRepository) FindEventsByTripID(ctx context.Context, tripID string) ([]domain.TripEvent, error) {
	query := `
		SELECT event_id, trip_id, from_status, to_status, occurred_at, actor_id, remarks
		FROM trip_events
		WHERE trip_id = $1
		ORDER BY occurred_at ASC, event_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip events: %w", err)
	}
	defer rows.Close()

	modelEvents := []models.TripEvent{}
	for rows.Next() {
		var m models.TripEvent
		err := rows.Scan(
			&m.EventID, &m.TripID, &m.FromStatus, &m.ToStatus, &m.OccurredAt, &m.ActorID, &m.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip event row: %w", err)
		}
		modelEvents = append(modelEvents, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trip event rows: %w", rows.Err())
	}

	return mapping.ToDomainTripEventSlice(modelEvents), nil
}
