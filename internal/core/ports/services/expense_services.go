package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// ExpenseSvcFacade records and lists operating expenses, optionally tied to a
// trip or a truck.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
}
