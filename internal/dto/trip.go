package dto

import (
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTripRequest defines the data needed to plan a new trip.
type CreateTripRequest struct {
	TruckID       string          `json:"truckID" binding:"required"`
	DriverID      string          `json:"driverID" binding:"required"`
	ClientID      string          `json:"clientID" binding:"required"`
	FromLocation  string          `json:"fromLocation" binding:"required"`
	ToLocation    string          `json:"toLocation" binding:"required"`
	PlannedStart  time.Time       `json:"plannedStart" binding:"required"`
	PlannedEnd    time.Time       `json:"plannedEnd" binding:"required"`
	TripCharges   decimal.Decimal `json:"tripCharges" binding:"required"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
	AutoInvoice   bool            `json:"autoInvoice"`
	Remarks       string          `json:"remarks"`
}

// StartTripRequest defines the optional data for starting a trip.
// ActualStart defaults to the current time when omitted.
type StartTripRequest struct {
	ActualStart *time.Time `json:"actualStart"`
	Remarks     string     `json:"remarks"`
}

// CompleteTripRequest captures the closing figures of a finished trip.
type CompleteTripRequest struct {
	ActualEnd     *time.Time      `json:"actualEnd"`
	DistanceKM    decimal.Decimal `json:"distanceKM" binding:"required"`
	FuelConsumedL decimal.Decimal `json:"fuelConsumedL"`
	FuelCost      decimal.Decimal `json:"fuelCost"`
	TollCharges   decimal.Decimal `json:"tollCharges"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	Remarks       string          `json:"remarks"`
}

// CancelTripRequest defines the data for cancelling a trip.
type CancelTripRequest struct {
	Remarks string `json:"remarks" binding:"required"`
}

// TripResponse defines the data returned for a trip.
type TripResponse struct {
	TripID        string            `json:"tripID"`
	TripNumber    string            `json:"tripNumber"`
	TruckID       string            `json:"truckID"`
	DriverID      string            `json:"driverID"`
	ClientID      string            `json:"clientID"`
	FromLocation  string            `json:"fromLocation"`
	ToLocation    string            `json:"toLocation"`
	PlannedStart  time.Time         `json:"plannedStart"`
	PlannedEnd    time.Time         `json:"plannedEnd"`
	ActualStart   *time.Time        `json:"actualStart,omitempty"`
	ActualEnd     *time.Time        `json:"actualEnd,omitempty"`
	Status        domain.TripStatus `json:"status"`
	TripCharges   decimal.Decimal   `json:"tripCharges"`
	AdvanceAmount decimal.Decimal   `json:"advanceAmount"`
	DistanceKM    decimal.Decimal   `json:"distanceKM"`
	FuelConsumedL decimal.Decimal   `json:"fuelConsumedL"`
	FuelCost      decimal.Decimal   `json:"fuelCost"`
	TollCharges   decimal.Decimal   `json:"tollCharges"`
	OtherExpenses decimal.Decimal   `json:"otherExpenses"`
	AutoInvoice   bool              `json:"autoInvoice"`
	InvoiceID     *string           `json:"invoiceID,omitempty"`
	Remarks       string            `json:"remarks"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy string            `json:"lastUpdatedBy"`
}

// TripEventResponse defines one row of a trip's transition history.
type TripEventResponse struct {
	EventID    string    `json:"eventID"`
	TripID     string    `json:"tripID"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	OccurredAt time.Time `json:"occurredAt"`
	ActorID    string    `json:"actorID"`
	Remarks    string    `json:"remarks"`
}

// ListTripsParams defines query parameters for listing trips.
type ListTripsParams struct {
	Status    *string `form:"status"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTripsResponse wraps the paginated list of trips.
type ListTripsResponse struct {
	Trips     []TripResponse `json:"trips"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:        t.TripID,
		TripNumber:    t.TripNumber,
		TruckID:       t.TruckID,
		DriverID:      t.DriverID,
		ClientID:      t.ClientID,
		FromLocation:  t.FromLocation,
		ToLocation:    t.ToLocation,
		PlannedStart:  t.PlannedStart,
		PlannedEnd:    t.PlannedEnd,
		ActualStart:   t.ActualStart,
		ActualEnd:     t.ActualEnd,
		Status:        t.Status,
		TripCharges:   t.TripCharges,
		AdvanceAmount: t.AdvanceAmount,
		DistanceKM:    t.DistanceKM,
		FuelConsumedL: t.FuelConsumedL,
		FuelCost:      t.FuelCost,
		TollCharges:   t.TollCharges,
		OtherExpenses: t.OtherExpenses,
		AutoInvoice:   t.AutoInvoice,
		InvoiceID:     t.InvoiceID,
		Remarks:       t.Remarks,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTripsResponse converts a slice of domain.Trip plus a pagination token.
func ToListTripsResponse(trips []domain.Trip, nextToken *string) ListTripsResponse {
	res := make([]TripResponse, len(trips))
	for i, t := range trips {
		res[i] = ToTripResponse(&t)
	}
	return ListTripsResponse{Trips: res, NextToken: nextToken}
}

// ToTripEventResponse converts a domain.TripEvent to TripEventResponse DTO
func ToTripEventResponse(e *domain.TripEvent) TripEventResponse {
	return TripEventResponse{
		EventID:    e.EventID,
		TripID:     e.TripID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		OccurredAt: e.OccurredAt,
		ActorID:    e.ActorID,
		Remarks:    e.Remarks,
	}
}

// ToTripEventResponses converts a slice of domain.TripEvent to []TripEventResponse.
func ToTripEventResponses(events []domain.TripEvent) []TripEventResponse {
	responses := make([]TripEventResponse, len(events))
	for i, e := range events {
		responses[i] = ToTripEventResponse(&e)
	}
	return responses
}
