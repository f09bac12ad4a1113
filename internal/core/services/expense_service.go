package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

const expenseNumberPrefix = "EXP"

// expenseService records standalone expense vouchers, optionally linked to a
// trip or truck. Trip completion expenses live on the trip itself; this is for
// everything in between.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tripRepo    portsrepo.TripReader
	truckRepo   portsrepo.TruckReader
	sequenceSvc portssvc.SequenceSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, tripRepo portsrepo.TripReader, truckRepo portsrepo.TruckReader, sequenceSvc portssvc.SequenceSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		tripRepo:    tripRepo,
		truckRepo:   truckRepo,
		sequenceSvc: sequenceSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense implements portssvc.ExpenseSvcFacade.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrInvalidAmount)
	}

	if req.TripID != nil {
		if _, err := s.tripRepo.FindTripByID(ctx, *req.TripID); err != nil {
			return nil, err
		}
	}
	if req.TruckID != nil {
		if _, err := s.truckRepo.FindTruckByID(ctx, *req.TruckID); err != nil {
			return nil, err
		}
	}

	expenseNumber, err := s.sequenceSvc.NextSequenceNumber(ctx, expenseNumberPrefix)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expenseDate := now
	if req.ExpenseDate != nil {
		expenseDate = req.ExpenseDate.UTC()
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		ExpenseNumber: expenseNumber,
		TripID:        req.TripID,
		TruckID:       req.TruckID,
		Category:      req.Category,
		Amount:        req.Amount,
		ExpenseDate:   expenseDate,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to save expense", "expense_number", expenseNumber)
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "expense recorded", "expense_id", expense.ExpenseID, "expense_number", expenseNumber)
	return &expense, nil
}

// GetExpenseByID implements portssvc.ExpenseSvcFacade.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses implements portssvc.ExpenseSvcFacade.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	var category *domain.ExpenseCategory
	if params.Category != nil {
		cat := domain.ExpenseCategory(*params.Category)
		switch cat {
		case domain.ExpenseFuel, domain.ExpenseToll, domain.ExpenseRepair, domain.ExpenseMisc:
			category = &cat
		default:
			return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, *params.Category)
		}
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, params.TripID, params.TruckID, category, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	resp := dto.ToListExpensesResponse(expenses)
	return &resp, nil
}
