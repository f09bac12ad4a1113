package dto

import (
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTruckRequest defines the data needed to register a new truck.
type CreateTruckRequest struct {
	RegistrationNumber string          `json:"registrationNumber" binding:"required"`
	Model              string          `json:"model"`
	CapacityTons       decimal.Decimal `json:"capacityTons"`
	OdometerKM         decimal.Decimal `json:"odometerKM"`
}

// UpdateTruckRequest defines the data allowed for updating a truck.
type UpdateTruckRequest struct {
	Model        *string          `json:"model"`
	CapacityTons *decimal.Decimal `json:"capacityTons"`
}

// TruckResponse defines the data returned for a truck.
type TruckResponse struct {
	TruckID            string          `json:"truckID"`
	RegistrationNumber string          `json:"registrationNumber"`
	Model              string          `json:"model"`
	CapacityTons       decimal.Decimal `json:"capacityTons"`
	OdometerKM         decimal.Decimal `json:"odometerKM"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy      string          `json:"lastUpdatedBy"`
}

// RecordMaintenanceRequest defines the data for logging a truck service visit.
type RecordMaintenanceRequest struct {
	ServiceDate time.Time       `json:"serviceDate" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Cost        decimal.Decimal `json:"cost" binding:"required"`
	OdometerKM  decimal.Decimal `json:"odometerKM"`
}

// MaintenanceRecordResponse defines the data returned for a maintenance record.
type MaintenanceRecordResponse struct {
	MaintenanceID string          `json:"maintenanceID"`
	TruckID       string          `json:"truckID"`
	ServiceDate   time.Time       `json:"serviceDate"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost"`
	OdometerKM    decimal.Decimal `json:"odometerKM"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListTrucksParams defines query parameters for listing trucks.
type ListTrucksParams struct {
	IncludeInactive bool `form:"includeInactive"`
	Limit           int  `form:"limit,default=20"`
	Offset          int  `form:"offset,default=0"`
}

// ListTrucksResponse wraps the list of trucks.
type ListTrucksResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

// CreateDriverRequest defines the data needed to register a new driver.
type CreateDriverRequest struct {
	Name          string     `json:"name" binding:"required"`
	LicenseNumber string     `json:"licenseNumber" binding:"required"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	Phone         string     `json:"phone"`
}

// UpdateDriverRequest defines the data allowed for updating a driver.
type UpdateDriverRequest struct {
	Name          *string    `json:"name"`
	LicenseNumber *string    `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	Phone         *string    `json:"phone"`
}

// DriverResponse defines the data returned for a driver.
type DriverResponse struct {
	DriverID      string     `json:"driverID"`
	Name          string     `json:"name"`
	LicenseNumber string     `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
	Phone         string     `json:"phone"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	CreatedBy     string     `json:"createdBy"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy string     `json:"lastUpdatedBy"`
}

// ListDriversParams defines query parameters for listing drivers.
type ListDriversParams struct {
	IncludeInactive bool `form:"includeInactive"`
	Limit           int  `form:"limit,default=20"`
	Offset          int  `form:"offset,default=0"`
}

// ListDriversResponse wraps the list of drivers.
type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

// ToTruckResponse converts a domain.Truck to TruckResponse DTO
func ToTruckResponse(t *domain.Truck) TruckResponse {
	return TruckResponse{
		TruckID:            t.TruckID,
		RegistrationNumber: t.RegistrationNumber,
		Model:              t.Model,
		CapacityTons:       t.CapacityTons,
		OdometerKM:         t.OdometerKM,
		IsActive:           t.IsActive,
		CreatedAt:          t.CreatedAt,
		CreatedBy:          t.CreatedBy,
		LastUpdatedAt:      t.LastUpdatedAt,
		LastUpdatedBy:      t.LastUpdatedBy,
	}
}

// ToListTrucksResponse converts a slice of domain.Truck to ListTrucksResponse DTO
func ToListTrucksResponse(trucks []domain.Truck) ListTrucksResponse {
	res := make([]TruckResponse, len(trucks))
	for i, t := range trucks {
		res[i] = ToTruckResponse(&t)
	}
	return ListTrucksResponse{Trucks: res}
}

// ToMaintenanceRecordResponse converts a domain.MaintenanceRecord to its DTO.
func ToMaintenanceRecordResponse(m *domain.MaintenanceRecord) MaintenanceRecordResponse {
	return MaintenanceRecordResponse{
		MaintenanceID: m.MaintenanceID,
		TruckID:       m.TruckID,
		ServiceDate:   m.ServiceDate,
		Description:   m.Description,
		Cost:          m.Cost,
		OdometerKM:    m.OdometerKM,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToMaintenanceRecordResponses converts a slice of domain.MaintenanceRecord.
func ToMaintenanceRecordResponses(records []domain.MaintenanceRecord) []MaintenanceRecordResponse {
	responses := make([]MaintenanceRecordResponse, len(records))
	for i, m := range records {
		responses[i] = ToMaintenanceRecordResponse(&m)
	}
	return responses
}

// ToDriverResponse converts a domain.Driver to DriverResponse DTO
func ToDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		DriverID:      d.DriverID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		LicenseExpiry: d.LicenseExpiry,
		Phone:         d.Phone,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToListDriversResponse converts a slice of domain.Driver to ListDriversResponse DTO
func ToListDriversResponse(drivers []domain.Driver) ListDriversResponse {
	res := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		res[i] = ToDriverResponse(&d)
	}
	return ListDriversResponse{Drivers: res}
}
