package domain

import "time"

// Driver represents a driver employed by the fleet.
// Driver master data is maintained by back-office flows; the trip core only reads it.
type Driver struct {
	DriverID      string     `json:"driverID"` // Primary Key (UUID)
	Name          string     `json:"name"`
	LicenseNumber string     `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry"` // Nullable
	Phone         string     `json:"phone"`
	IsActive      bool       `json:"isActive"`
	AuditFields
}
