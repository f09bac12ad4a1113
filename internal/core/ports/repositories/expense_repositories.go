package repositories

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense vouchers
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses, optionally filtered
	// by trip, truck or category.
	ListExpenses(ctx context.Context, tripID *string, truckID *string, category *domain.ExpenseCategory, limit int, offset int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense vouchers
type ExpenseWriter interface {
	// SaveExpense persists a new expense voucher.
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
