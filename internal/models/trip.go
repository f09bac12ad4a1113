package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus indicates where a trip is in its lifecycle.
type TripStatus string

const (
	TripPlanned   TripStatus = "PLANNED"
	TripRunning   TripStatus = "RUNNING"
	TripCompleted TripStatus = "COMPLETED"
	TripCancelled TripStatus = "CANCELLED"
)

// Trip is the persistence model for one truck+driver assignment.
type Trip struct {
	TripID     string `json:"tripID" db:"trip_id"`
	TripNumber string `json:"tripNumber" db:"trip_number"`
	TruckID    string `json:"truckID" db:"truck_id"`
	DriverID   string `json:"driverID" db:"driver_id"`
	ClientID   string `json:"clientID" db:"client_id"`

	FromLocation string `json:"fromLocation" db:"from_location"`
	ToLocation   string `json:"toLocation" db:"to_location"`

	PlannedStart time.Time  `json:"plannedStart" db:"planned_start"`
	PlannedEnd   time.Time  `json:"plannedEnd" db:"planned_end"`
	ActualStart  *time.Time `json:"actualStart" db:"actual_start"`
	ActualEnd    *time.Time `json:"actualEnd" db:"actual_end"`

	Status TripStatus `json:"status" db:"status"`

	TripCharges   decimal.Decimal `json:"tripCharges" db:"trip_charges"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount" db:"advance_amount"`
	DistanceKM    decimal.Decimal `json:"distanceKM" db:"distance_km"`

	FuelConsumedL decimal.Decimal `json:"fuelConsumedL" db:"fuel_consumed_l"`
	FuelCost      decimal.Decimal `json:"fuelCost" db:"fuel_cost"`
	TollCharges   decimal.Decimal `json:"tollCharges" db:"toll_charges"`
	OtherExpenses decimal.Decimal `json:"otherExpenses" db:"other_expenses"`

	AutoInvoice bool    `json:"autoInvoice" db:"auto_invoice"`
	InvoiceID   *string `json:"invoiceID" db:"invoice_id"`

	Remarks string `json:"remarks" db:"remarks"`
	AuditFields
}

// TripEvent is one row of the append-only trip history table.
type TripEvent struct {
	EventID    string     `json:"eventID" db:"event_id"`
	TripID     string     `json:"tripID" db:"trip_id"`
	FromStatus TripStatus `json:"fromStatus" db:"from_status"`
	ToStatus   TripStatus `json:"toStatus" db:"to_status"`
	OccurredAt time.Time  `json:"occurredAt" db:"occurred_at"`
	ActorID    string     `json:"actorID" db:"actor_id"`
	Remarks    string     `json:"remarks" db:"remarks"`
}
