package mapping

import (
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
)

// ToModelTruck converts a domain Truck to a model Truck
func ToModelTruck(d domain.Truck) models.Truck {
	return models.Truck{
		TruckID:            d.TruckID,
		RegistrationNumber: d.RegistrationNumber,
		Model:              d.Model,
		CapacityTons:       d.CapacityTons,
		OdometerKM:         d.OdometerKM,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTruck converts a model Truck to a domain Truck
func ToDomainTruck(m models.Truck) domain.Truck {
	return domain.Truck{
		TruckID:            m.TruckID,
		RegistrationNumber: m.RegistrationNumber,
		Model:              m.Model,
		CapacityTons:       m.CapacityTons,
		OdometerKM:         m.OdometerKM,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTruckSlice converts a slice of model Trucks to domain Trucks
func ToDomainTruckSlice(ms []models.Truck) []domain.Truck {
	ds := make([]domain.Truck, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTruck(m)
	}
	return ds
}

// ToModelDriver converts a domain Driver to a model Driver
func ToModelDriver(d domain.Driver) models.Driver {
	return models.Driver{
		DriverID:      d.DriverID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		LicenseExpiry: d.LicenseExpiry,
		Phone:         d.Phone,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDriver converts a model Driver to a domain Driver
func ToDomainDriver(m models.Driver) domain.Driver {
	return domain.Driver{
		DriverID:      m.DriverID,
		Name:          m.Name,
		LicenseNumber: m.LicenseNumber,
		LicenseExpiry: m.LicenseExpiry,
		Phone:         m.Phone,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDriverSlice converts a slice of model Drivers to domain Drivers
func ToDomainDriverSlice(ms []models.Driver) []domain.Driver {
	ds := make([]domain.Driver, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDriver(m)
	}
	return ds
}

// ToModelMaintenanceRecord converts a domain MaintenanceRecord to a model MaintenanceRecord
func ToModelMaintenanceRecord(d domain.MaintenanceRecord) models.MaintenanceRecord {
	return models.MaintenanceRecord{
		MaintenanceID: d.MaintenanceID,
		TruckID:       d.TruckID,
		ServiceDate:   d.ServiceDate,
		Description:   d.Description,
		Cost:          d.Cost,
		OdometerKM:    d.OdometerKM,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMaintenanceRecord converts a model MaintenanceRecord to a domain MaintenanceRecord
func ToDomainMaintenanceRecord(m models.MaintenanceRecord) domain.MaintenanceRecord {
	return domain.MaintenanceRecord{
		MaintenanceID: m.MaintenanceID,
		TruckID:       m.TruckID,
		ServiceDate:   m.ServiceDate,
		Description:   m.Description,
		Cost:          m.Cost,
		OdometerKM:    m.OdometerKM,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMaintenanceRecordSlice converts model MaintenanceRecords to domain ones
func ToDomainMaintenanceRecordSlice(ms []models.MaintenanceRecord) []domain.MaintenanceRecord {
	ds := make([]domain.MaintenanceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMaintenanceRecord(m)
	}
	return ds
}
