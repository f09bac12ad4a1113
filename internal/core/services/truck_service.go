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

// truckService provides truck master data and maintenance log operations.
// The odometer is deliberately absent from the update path; it only advances
// through trip completion.
type truckService struct {
	BaseService
	truckRepo portsrepo.TruckRepositoryFacade
}

// NewTruckService creates a new TruckService.
func NewTruckService(truckRepo portsrepo.TruckRepositoryFacade) portssvc.TruckSvcFacade {
	return &truckService{truckRepo: truckRepo}
}

var _ portssvc.TruckSvcFacade = (*truckService)(nil)

// CreateTruck implements portssvc.TruckWriterSvc.
func (s *truckService) CreateTruck(ctx context.Context, req dto.CreateTruckRequest, creatorUserID string) (*domain.Truck, error) {
	if req.CapacityTons.IsNegative() || req.OdometerKM.IsNegative() {
		return nil, fmt.Errorf("%w: capacity and odometer must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	truck := domain.Truck{
		TruckID:            uuid.NewString(),
		RegistrationNumber: req.RegistrationNumber,
		Model:              req.Model,
		CapacityTons:       req.CapacityTons,
		OdometerKM:         req.OdometerKM,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.truckRepo.SaveTruck(ctx, truck); err != nil {
		s.LogError(ctx, err, "failed to save truck", "registration_number", req.RegistrationNumber)
		return nil, fmt.Errorf("failed to save truck: %w", err)
	}

	s.LogInfo(ctx, "truck created", "truck_id", truck.TruckID, "registration_number", truck.RegistrationNumber)
	return &truck, nil
}

// GetTruckByID implements portssvc.TruckReaderSvc.
func (s *truckService) GetTruckByID(ctx context.Context, truckID string) (*domain.Truck, error) {
	return s.truckRepo.FindTruckByID(ctx, truckID)
}

// ListTrucks implements portssvc.TruckReaderSvc.
func (s *truckService) ListTrucks(ctx context.Context, params dto.ListTrucksParams) (*dto.ListTrucksResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	trucks, err := s.truckRepo.FindTrucks(ctx, params.IncludeInactive, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	resp := dto.ToListTrucksResponse(trucks)
	return &resp, nil
}

// UpdateTruck implements portssvc.TruckWriterSvc.
func (s *truckService) UpdateTruck(ctx context.Context, truckID string, req dto.UpdateTruckRequest, userID string) (*domain.Truck, error) {
	truck, err := s.truckRepo.FindTruckByID(ctx, truckID)
	if err != nil {
		return nil, err
	}

	if req.Model != nil {
		truck.Model = *req.Model
	}
	if req.CapacityTons != nil {
		if req.CapacityTons.IsNegative() {
			return nil, fmt.Errorf("%w: capacity must not be negative", apperrors.ErrValidation)
		}
		truck.CapacityTons = *req.CapacityTons
	}
	truck.LastUpdatedAt = time.Now().UTC()
	truck.LastUpdatedBy = userID

	if err := s.truckRepo.UpdateTruck(ctx, *truck); err != nil {
		s.LogError(ctx, err, "failed to update truck", "truck_id", truckID)
		return nil, fmt.Errorf("failed to update truck: %w", err)
	}
	return truck, nil
}

// DeactivateTruck implements portssvc.TruckWriterSvc.
func (s *truckService) DeactivateTruck(ctx context.Context, truckID string, userID string) error {
	if _, err := s.truckRepo.FindTruckByID(ctx, truckID); err != nil {
		return err
	}
	if err := s.truckRepo.DeactivateTruck(ctx, truckID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to deactivate truck", "truck_id", truckID)
		return fmt.Errorf("failed to deactivate truck: %w", err)
	}
	s.LogInfo(ctx, "truck deactivated", "truck_id", truckID)
	return nil
}

// RecordMaintenance implements portssvc.TruckWriterSvc.
func (s *truckService) RecordMaintenance(ctx context.Context, truckID string, req dto.RecordMaintenanceRequest, userID string) (*domain.MaintenanceRecord, error) {
	if req.Cost.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: maintenance cost must be positive", apperrors.ErrInvalidAmount)
	}
	if req.OdometerKM.IsNegative() {
		return nil, fmt.Errorf("%w: odometer reading must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.truckRepo.FindTruckByID(ctx, truckID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := domain.MaintenanceRecord{
		MaintenanceID: uuid.NewString(),
		TruckID:       truckID,
		ServiceDate:   req.ServiceDate,
		Description:   req.Description,
		Cost:          req.Cost,
		OdometerKM:    req.OdometerKM,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.truckRepo.SaveMaintenanceRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "failed to save maintenance record", "truck_id", truckID)
		return nil, fmt.Errorf("failed to save maintenance record: %w", err)
	}
	return &record, nil
}

// ListMaintenanceRecords implements portssvc.TruckReaderSvc.
func (s *truckService) ListMaintenanceRecords(ctx context.Context, truckID string) ([]domain.MaintenanceRecord, error) {
	if _, err := s.truckRepo.FindTruckByID(ctx, truckID); err != nil {
		return nil, err
	}
	return s.truckRepo.FindMaintenanceByTruckID(ctx, truckID)
}
