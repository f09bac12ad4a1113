package mapping

import (
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:        d.TripID,
		TripNumber:    d.TripNumber,
		TruckID:       d.TruckID,
		DriverID:      d.DriverID,
		ClientID:      d.ClientID,
		FromLocation:  d.FromLocation,
		ToLocation:    d.ToLocation,
		PlannedStart:  d.PlannedStart,
		PlannedEnd:    d.PlannedEnd,
		ActualStart:   d.ActualStart,
		ActualEnd:     d.ActualEnd,
		Status:        models.TripStatus(d.Status),
		TripCharges:   d.TripCharges,
		AdvanceAmount: d.AdvanceAmount,
		DistanceKM:    d.DistanceKM,
		FuelConsumedL: d.FuelConsumedL,
		FuelCost:      d.FuelCost,
		TollCharges:   d.TollCharges,
		OtherExpenses: d.OtherExpenses,
		AutoInvoice:   d.AutoInvoice,
		InvoiceID:     d.InvoiceID,
		Remarks:       d.Remarks,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrip converts a model Trip to a domain Trip
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:        m.TripID,
		TripNumber:    m.TripNumber,
		TruckID:       m.TruckID,
		DriverID:      m.DriverID,
		ClientID:      m.ClientID,
		FromLocation:  m.FromLocation,
		ToLocation:    m.ToLocation,
		PlannedStart:  m.PlannedStart,
		PlannedEnd:    m.PlannedEnd,
		ActualStart:   m.ActualStart,
		ActualEnd:     m.ActualEnd,
		Status:        domain.TripStatus(m.Status),
		TripCharges:   m.TripCharges,
		AdvanceAmount: m.AdvanceAmount,
		DistanceKM:    m.DistanceKM,
		FuelConsumedL: m.FuelConsumedL,
		FuelCost:      m.FuelCost,
		TollCharges:   m.TollCharges,
		OtherExpenses: m.OtherExpenses,
		AutoInvoice:   m.AutoInvoice,
		InvoiceID:     m.InvoiceID,
		Remarks:       m.Remarks,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTripSlice converts a slice of model Trips to a slice of domain Trips
func ToDomainTripSlice(ms []models.Trip) []domain.Trip {
	ds := make([]domain.Trip, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrip(m)
	}
	return ds
}

// ToModelTripEvent converts a domain TripEvent to a model TripEvent
func ToModelTripEvent(d domain.TripEvent) models.TripEvent {
	return models.TripEvent{
		EventID:    d.EventID,
		TripID:     d.TripID,
		FromStatus: models.TripStatus(d.FromStatus),
		ToStatus:   models.TripStatus(d.ToStatus),
		OccurredAt: d.OccurredAt,
		ActorID:    d.ActorID,
		Remarks:    d.Remarks,
	}
}

// ToDomainTripEvent converts a model TripEvent to a domain TripEvent
func ToDomainTripEvent(m models.TripEvent) domain.TripEvent {
	return domain.TripEvent{
		EventID:    m.EventID,
		TripID:     m.TripID,
		FromStatus: domain.TripStatus(m.FromStatus),
		ToStatus:   domain.TripStatus(m.ToStatus),
		OccurredAt: m.OccurredAt,
		ActorID:    m.ActorID,
		Remarks:    m.Remarks,
	}
}

// ToDomainTripEventSlice converts a slice of model TripEvents to domain TripEvents
func ToDomainTripEventSlice(ms []models.TripEvent) []domain.TripEvent {
	ds := make([]domain.TripEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTripEvent(m)
	}
	return ds
}
