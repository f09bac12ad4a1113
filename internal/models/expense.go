package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persistence model for a standalone expense voucher.
type Expense struct {
	ExpenseID     string          `json:"expenseID" db:"expense_id"`
	ExpenseNumber string          `json:"expenseNumber" db:"expense_number"`
	TripID        *string         `json:"tripID" db:"trip_id"`
	TruckID       *string         `json:"truckID" db:"truck_id"`
	Category      string          `json:"category" db:"category"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	ExpenseDate   time.Time       `json:"expenseDate" db:"expense_date"`
	Description   string          `json:"description" db:"description"`
	AuditFields
}
