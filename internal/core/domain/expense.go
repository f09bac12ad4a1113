package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense voucher.
type ExpenseCategory string

const (
	ExpenseFuel   ExpenseCategory = "FUEL"
	ExpenseToll   ExpenseCategory = "TOLL"
	ExpenseRepair ExpenseCategory = "REPAIR"
	ExpenseMisc   ExpenseCategory = "MISC"
)

// Expense is a standalone expense voucher, optionally linked to a trip.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`     // Primary Key (UUID)
	ExpenseNumber string          `json:"expenseNumber"` // Business key, e.g. EXP202601150001
	TripID        *string         `json:"tripID"`        // Nullable FK -> trips.trip_id
	TruckID       *string         `json:"truckID"`       // Nullable FK -> trucks.truck_id
	Category      ExpenseCategory `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Description   string          `json:"description"`
	AuditFields
}
