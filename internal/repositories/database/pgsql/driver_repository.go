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
)

type PgxDriverRepository struct {
	BaseRepository
}

func newPgxDriverRepository(pool *pgxpool.Pool) *PgxDriverRepository {
	return &PgxDriverRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DriverRepositoryFacade = (*PgxDriverRepository)(nil)

const driverColumns = `driver_id, name, license_number, license_expiry, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanDriver(row pgx.Row) (models.Driver, error) {
	var m models.Driver
	err := row.Scan(
		&m.DriverID,
		&m.Name,
		&m.LicenseNumber,
		&m.LicenseExpiry,
		&m.Phone,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDriverRepository) SaveDriver(ctx context.Context, driver domain.Driver) error {
	m := mapping.ToModelDriver(driver)
	query := `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DriverID,
		m.Name,
		m.LicenseNumber,
		m.LicenseExpiry,
		m.Phone,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("license number %s already registered: %w", m.LicenseNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save driver: %w", err)
	}
	return nil
}

func (r *PgxDriverRepository) FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1;`
	m, err := scanDriver(r.Pool.QueryRow(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find driver by ID %s: %w", driverID, err)
	}
	d := mapping.ToDomainDriver(m)
	return &d, nil
}

func (r *PgxDriverRepository) FindDrivers(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Driver, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + driverColumns + ` FROM drivers`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC, driver_id ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	modelDrivers := []models.Driver{}
	for rows.Next() {
		m, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver row: %w", err)
		}
		modelDrivers = append(modelDrivers, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating driver rows: %w", rows.Err())
	}

	return mapping.ToDomainDriverSlice(modelDrivers), nil
}

func (r *PgxDriverRepository) UpdateDriver(ctx context.Context, driver domain.Driver) error {
	m := mapping.ToModelDriver(driver)
	query := `
		UPDATE drivers
		SET name = $1, license_number = $2, license_expiry = $3, phone = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE driver_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.LicenseNumber,
		m.LicenseExpiry,
		m.Phone,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DriverID,
	)
	if err != nil {
		return fmt.Errorf("failed to update driver %s: %w", m.DriverID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("driver not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDriverRepository) DeactivateDriver(ctx context.Context, driverID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE drivers
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE driver_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, updatedAt, updatedBy, driverID)
	if err != nil {
		return fmt.Errorf("failed to deactivate driver %s: %w", driverID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("driver not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
