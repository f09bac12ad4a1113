package models

import "time"

// Driver is the persistence model for a fleet driver.
type Driver struct {
	DriverID      string     `json:"driverID" db:"driver_id"`
	Name          string     `json:"name" db:"name"`
	LicenseNumber string     `json:"licenseNumber" db:"license_number"`
	LicenseExpiry *time.Time `json:"licenseExpiry" db:"license_expiry"`
	Phone         string     `json:"phone" db:"phone"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	AuditFields
}
