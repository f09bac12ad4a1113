package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TruckReader defines read operations for truck data
type TruckReader interface {
	// FindTruckByID retrieves a specific truck by its ID.
	FindTruckByID(ctx context.Context, truckID string) (*domain.Truck, error)

	// FindTrucks retrieves a paginated list of trucks.
	FindTrucks(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Truck, error)

	// FindMaintenanceByTruckID retrieves a truck's maintenance log, newest first.
	FindMaintenanceByTruckID(ctx context.Context, truckID string) ([]domain.MaintenanceRecord, error)
}

// TruckWriter defines write operations for truck data
type TruckWriter interface {
	// SaveTruck persists a new truck.
	SaveTruck(ctx context.Context, truck domain.Truck) error

	// UpdateTruck updates a truck's master data. The odometer is excluded; it
	// only moves through IncrementOdometerInTx.
	UpdateTruck(ctx context.Context, truck domain.Truck) error

	// DeactivateTruck flags a truck inactive.
	DeactivateTruck(ctx context.Context, truckID string, updatedBy string, updatedAt time.Time) error

	// IncrementOdometerInTx adds distance to a truck's odometer inside an existing
	// transaction. The increment is non-negative so the odometer never decreases.
	IncrementOdometerInTx(ctx context.Context, tx pgx.Tx, truckID string, distanceKM decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// SaveMaintenanceRecord appends one entry to a truck's maintenance log.
	SaveMaintenanceRecord(ctx context.Context, record domain.MaintenanceRecord) error
}

// TruckRepositoryFacade combines all truck-related repository interfaces
type TruckRepositoryFacade interface {
	TruckReader
	TruckWriter
}

// DriverReader defines read operations for driver data
type DriverReader interface {
	// FindDriverByID retrieves a specific driver by their ID.
	FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error)

	// FindDrivers retrieves a paginated list of drivers.
	FindDrivers(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Driver, error)
}

// DriverWriter defines write operations for driver data
type DriverWriter interface {
	// SaveDriver persists a new driver.
	SaveDriver(ctx context.Context, driver domain.Driver) error

	// UpdateDriver updates an existing driver's details.
	UpdateDriver(ctx context.Context, driver domain.Driver) error

	// DeactivateDriver flags a driver inactive.
	DeactivateDriver(ctx context.Context, driverID string, updatedBy string, updatedAt time.Time) error
}

// DriverRepositoryFacade combines all driver-related repository interfaces
type DriverRepositoryFacade interface {
	DriverReader
	DriverWriter
}
