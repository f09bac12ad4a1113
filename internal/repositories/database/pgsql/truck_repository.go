package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
	"github.com/SscSPs/fleet_logistics_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTruckRepository struct {
	BaseRepository
}

func newPgxTruckRepository(pool *pgxpool.Pool) *PgxTruckRepository {
	return &PgxTruckRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TruckRepositoryFacade = (*PgxTruckRepository)(nil)

const truckColumns = `truck_id, registration_number, model, capacity_tons, odometer_km, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanTruck(row pgx.Row) (models.Truck, error) {
	var m models.Truck
	err := row.Scan(
		&m.TruckID,
		&m.RegistrationNumber,
		&m.Model,
		&m.CapacityTons,
		&m.OdometerKM,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTruckRepository) SaveTruck(ctx context.Context, truck domain.Truck) error {
	m := mapping.ToModelTruck(truck)
	query := `
		INSERT INTO trucks (` + truckColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TruckID,
		m.RegistrationNumber,
		m.Model,
		m.CapacityTons,
		m.OdometerKM,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("registration number %s already registered: %w", m.RegistrationNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save truck: %w", err)
	}
	return nil
}

func (r *PgxTruckRepository) FindTruckByID(ctx context.Context, truckID string) (*domain.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE truck_id = $1;`
	m, err := scanTruck(r.Pool.QueryRow(ctx, query, truckID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find truck by ID %s: %w", truckID, err)
	}
	d := mapping.ToDomainTruck(m)
	return &d, nil
}

func (r *PgxTruckRepository) FindTrucks(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Truck, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + truckColumns + ` FROM trucks`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY registration_number ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query trucks: %w", err)
	}
	defer rows.Close()

	modelTrucks := []models.Truck{}
	for rows.Next() {
		m, err := scanTruck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan truck row: %w", err)
		}
		modelTrucks = append(modelTrucks, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating truck rows: %w", rows.Err())
	}

	return mapping.ToDomainTruckSlice(modelTrucks), nil
}

func (r *PgxTruckRepository) UpdateTruck(ctx context.Context, truck domain.Truck) error {
	m := mapping.ToModelTruck(truck)
	// Odometer deliberately excluded; only IncrementOdometerInTx moves it.
	query := `
		UPDATE trucks
		SET registration_number = $1, model = $2, capacity_tons = $3, is_active = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE truck_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.RegistrationNumber,
		m.Model,
		m.CapacityTons,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TruckID,
	)
	if err != nil {
		return fmt.Errorf("failed to update truck %s: %w", m.TruckID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("truck not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTruckRepository) DeactivateTruck(ctx context.Context, truckID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE trucks
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE truck_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, updatedAt, updatedBy, truckID)
	if err != nil {
		return fmt.Errorf("failed to deactivate truck %s: %w", truckID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("truck not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// IncrementOdometerInTx adds distance to a truck's odometer inside an existing
// transaction. The caller holds the completion transaction; the guard keeps the
// odometer from ever going backwards.
func (r *PgxTruckRepository) IncrementOdometerInTx(ctx context.Context, tx pgx.Tx, truckID string, distanceKM decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	if distanceKM.IsNegative() {
		return fmt.Errorf("odometer increment cannot be negative: %w", apperrors.ErrValidation)
	}
	query := `
		UPDATE trucks
		SET odometer_km = odometer_km + $1, last_updated_at = $2, last_updated_by = $3
		WHERE truck_id = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, distanceKM, updatedAt, updatedBy, truckID)
	if err != nil {
		return fmt.Errorf("failed to increment odometer for truck %s: %w", truckID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("truck not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTruckRepository) SaveMaintenanceRecord(ctx context.Context, record domain.MaintenanceRecord) error {
	m := mapping.ToModelMaintenanceRecord(record)
	query := `
		INSERT INTO maintenance_records (maintenance_id, truck_id, service_date, description, cost, odometer_km, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MaintenanceID,
		m.TruckID,
		m.ServiceDate,
		m.Description,
		m.Cost,
		m.OdometerKM,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance record for truck %s: %w", m.TruckID, err)
	}
	return nil
}

func (r *PgxTruckRepository) FindMaintenanceByTruckID(ctx context.Context, truckID string) ([]domain.MaintenanceRecord, error) {
	query := `
		SELECT maintenance_id, truck_id, service_date, description, cost, odometer_km, created_at, created_by, last_updated_at, last_updated_by
		FROM maintenance_records
		WHERE truck_id = $1
		ORDER BY service_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, truckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance records: %w", err)
	}
	defer rows.Close()

	modelRecords := []models.MaintenanceRecord{}
	for rows.Next() {
		var m models.MaintenanceRecord
		err := rows.Scan(
			&m.MaintenanceID,
			&m.TruckID,
			&m.ServiceDate,
			&m.Description,
			&m.Cost,
			&m.OdometerKM,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance record row: %w", err)
		}
		modelRecords = append(modelRecords, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating maintenance record rows: %w", rows.Err())
	}

	return mapping.ToDomainMaintenanceRecordSlice(modelRecords), nil
}
