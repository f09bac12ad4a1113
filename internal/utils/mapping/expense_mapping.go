package mapping

import (
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		ExpenseNumber: d.ExpenseNumber,
		TripID:        d.TripID,
		TruckID:       d.TruckID,
		Category:      string(d.Category),
		Amount:        d.Amount,
		ExpenseDate:   d.ExpenseDate,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		ExpenseNumber: m.ExpenseNumber,
		TripID:        m.TripID,
		TruckID:       m.TruckID,
		Category:      domain.ExpenseCategory(m.Category),
		Amount:        m.Amount,
		ExpenseDate:   m.ExpenseDate,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
