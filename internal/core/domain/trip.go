package domain

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

// CanTransitionTo reports whether the state machine permits moving to target.
// COMPLETED and CANCELLED are terminal.
func (s TripStatus) CanTransitionTo(target TripStatus) bool {
	switch s {
	case TripPlanned:
		return target == TripRunning || target == TripCancelled
	case TripRunning:
		return target == TripCompleted || target == TripCancelled
	default:
		return false
	}
}

// Trip represents one assignment of a truck+driver to move goods for a client.
type Trip struct {
	TripID     string `json:"tripID"`     // Primary Key (UUID)
	TripNumber string `json:"tripNumber"` // Business key, e.g. TR202601150001
	TruckID    string `json:"truckID"`    // FK -> trucks.truck_id
	DriverID   string `json:"driverID"`   // FK -> drivers.driver_id
	ClientID   string `json:"clientID"`   // FK -> clients.client_id

	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`

	PlannedStart time.Time  `json:"plannedStart"`
	PlannedEnd   time.Time  `json:"plannedEnd"`
	ActualStart  *time.Time `json:"actualStart"` // Set on Start
	ActualEnd    *time.Time `json:"actualEnd"`   // Set on Complete

	Status TripStatus `json:"status"`

	TripCharges   decimal.Decimal `json:"tripCharges"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"` // 0 <= advance <= tripCharges
	DistanceKM    decimal.Decimal `json:"distanceKM"`

	// Expense fields, filled at completion.
	FuelConsumedL decimal.Decimal `json:"fuelConsumedL"`
	FuelCost      decimal.Decimal `json:"fuelCost"`
	TollCharges   decimal.Decimal `json:"tollCharges"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`

	// AutoInvoice controls whether completion opens an invoice for the client.
	AutoInvoice bool    `json:"autoInvoice"`
	InvoiceID   *string `json:"invoiceID"` // Set when auto-invoiced

	Remarks string `json:"remarks"`
	AuditFields
}

// EffectiveStart returns the actual start when present, else the planned start.
func (t *Trip) EffectiveStart() time.Time {
	if t.ActualStart != nil {
		return *t.ActualStart
	}
	return t.PlannedStart
}

// EffectiveEnd returns the actual end when present, else the planned end.
// The second return is false for a RUNNING trip with no actual end, which is
// treated as open-ended for overlap purposes.
func (t *Trip) EffectiveEnd() (time.Time, bool) {
	if t.ActualEnd != nil {
		return *t.ActualEnd, true
	}
	if t.Status == TripRunning {
		return time.Time{}, false
	}
	return t.PlannedEnd, true
}

// TripEvent is one line of a trip's append-only transition history.
type TripEvent struct {
	EventID    string     `json:"eventID"`
	TripID     string     `json:"tripID"`
	FromStatus TripStatus `json:"fromStatus"`
	ToStatus   TripStatus `json:"toStatus"`
	OccurredAt time.Time  `json:"occurredAt"`
	ActorID    string     `json:"actorID"` // UserID Reference
	Remarks    string     `json:"remarks"`
}
