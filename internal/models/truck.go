package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Truck is the persistence model for one vehicle.
type Truck struct {
	TruckID            string          `json:"truckID" db:"truck_id"`
	RegistrationNumber string          `json:"registrationNumber" db:"registration_number"`
	Model              string          `json:"model" db:"model"`
	CapacityTons       decimal.Decimal `json:"capacityTons" db:"capacity_tons"`
	OdometerKM         decimal.Decimal `json:"odometerKM" db:"odometer_km"`
	IsActive           bool            `json:"isActive" db:"is_active"`
	AuditFields
}

// MaintenanceRecord is one row of a truck's append-only maintenance log.
type MaintenanceRecord struct {
	MaintenanceID string          `json:"maintenanceID" db:"maintenance_id"`
	TruckID       string          `json:"truckID" db:"truck_id"`
	ServiceDate   time.Time       `json:"serviceDate" db:"service_date"`
	Description   string          `json:"description" db:"description"`
	Cost          decimal.Decimal `json:"cost" db:"cost"`
	OdometerKM    decimal.Decimal `json:"odometerKM" db:"odometer_km"`
	AuditFields
}
