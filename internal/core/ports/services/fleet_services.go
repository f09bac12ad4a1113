package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// TruckReaderSvc defines read operations on trucks
type TruckReaderSvc interface {
	GetTruckByID(ctx context.Context, truckID string) (*domain.Truck, error)
	ListTrucks(ctx context.Context, params dto.ListTrucksParams) (*dto.ListTrucksResponse, error)
	ListMaintenanceRecords(ctx context.Context, truckID string) ([]domain.MaintenanceRecord, error)
}

// TruckWriterSvc defines write operations on trucks
type TruckWriterSvc interface {
	CreateTruck(ctx context.Context, req dto.CreateTruckRequest, creatorUserID string) (*domain.Truck, error)
	UpdateTruck(ctx context.Context, truckID string, req dto.UpdateTruckRequest, userID string) (*domain.Truck, error)

	// DeactivateTruck takes a truck out of service; existing trips keep referring to it.
	DeactivateTruck(ctx context.Context, truckID string, userID string) error

	// RecordMaintenance logs a service visit against a truck.
	RecordMaintenance(ctx context.Context, truckID string, req dto.RecordMaintenanceRequest, userID string) (*domain.MaintenanceRecord, error)
}

// TruckSvcFacade combines all truck-related service interfaces
type TruckSvcFacade interface {
	TruckReaderSvc
	TruckWriterSvc
}

// DriverReaderSvc defines read operations on drivers
type DriverReaderSvc interface {
	GetDriverByID(ctx context.Context, driverID string) (*domain.Driver, error)
	ListDrivers(ctx context.Context, params dto.ListDriversParams) (*dto.ListDriversResponse, error)
}

// DriverWriterSvc defines write operations on drivers
type DriverWriterSvc interface {
	CreateDriver(ctx context.Context, req dto.CreateDriverRequest, creatorUserID string) (*domain.Driver, error)
	UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest, userID string) (*domain.Driver, error)
	DeactivateDriver(ctx context.Context, driverID string, userID string) error
}

// DriverSvcFacade combines all driver-related service interfaces
type DriverSvcFacade interface {
	DriverReaderSvc
	DriverWriterSvc
}
