package dto

import (
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an operating expense.
type CreateExpenseRequest struct {
	TripID      *string                `json:"tripID"`
	TruckID     *string                `json:"truckID"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=FUEL TOLL REPAIR MISC"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	ExpenseDate *time.Time             `json:"expenseDate"` // defaults to now
	Description string                 `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	ExpenseNumber string          `json:"expenseNumber"`
	TripID        *string         `json:"tripID,omitempty"`
	TruckID       *string         `json:"truckID,omitempty"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	TripID   *string `form:"tripID"`
	TruckID  *string `form:"truckID"`
	Category *string `form:"category"`
	Limit    int     `form:"limit,default=20"`
	Offset   int     `form:"offset,default=0"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		ExpenseNumber: e.ExpenseNumber,
		TripID:        e.TripID,
		TruckID:       e.TruckID,
		Category:      string(e.Category),
		Amount:        e.Amount,
		ExpenseDate:   e.ExpenseDate,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to ListExpensesResponse DTO
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: res}
}
