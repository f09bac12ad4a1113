package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Truck represents one vehicle of the fleet.
// Odometer is monotonically non-decreasing; only trip completion advances it.
type Truck struct {
	TruckID            string          `json:"truckID"` // Primary Key (UUID)
	RegistrationNumber string          `json:"registrationNumber"`
	Model              string          `json:"model"`
	CapacityTons       decimal.Decimal `json:"capacityTons"`
	OdometerKM         decimal.Decimal `json:"odometerKM"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}

// MaintenanceRecord is one service/repair entry in a truck's maintenance log.
// The log is append-only.
type MaintenanceRecord struct {
	MaintenanceID string          `json:"maintenanceID"`
	TruckID       string          `json:"truckID"` // FK -> trucks.truck_id
	ServiceDate   time.Time       `json:"serviceDate"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost"`
	OdometerKM    decimal.Decimal `json:"odometerKM"` // Odometer reading at service time
	AuditFields
}
