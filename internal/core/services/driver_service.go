package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// driverService provides driver master data operations.
type driverService struct {
	BaseService
	driverRepo portsrepo.DriverRepositoryFacade
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo portsrepo.DriverRepositoryFacade) portssvc.DriverSvcFacade {
	return &driverService{driverRepo: driverRepo}
}

var _ portssvc.DriverSvcFacade = (*driverService)(nil)

// CreateDriver implements portssvc.DriverWriterSvc.
func (s *driverService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest, creatorUserID string) (*domain.Driver, error) {
	now := time.Now().UTC()
	driver := domain.Driver{
		DriverID:      uuid.NewString(),
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		Phone:         req.Phone,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.driverRepo.SaveDriver(ctx, driver); err != nil {
		s.LogError(ctx, err, "failed to save driver", "license_number", req.LicenseNumber)
		return nil, fmt.Errorf("failed to save driver: %w", err)
	}

	s.LogInfo(ctx, "driver created", "driver_id", driver.DriverID)
	return &driver, nil
}

// GetDriverByID implements portssvc.DriverReaderSvc.
func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.driverRepo.FindDriverByID(ctx, driverID)
}

// ListDrivers implements portssvc.DriverReaderSvc.
func (s *driverService) ListDrivers(ctx context.Context, params dto.ListDriversParams) (*dto.ListDriversResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	drivers, err := s.driverRepo.FindDrivers(ctx, params.IncludeInactive, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	resp := dto.ToListDriversResponse(drivers)
	return &resp, nil
}

// UpdateDriver implements portssvc.DriverWriterSvc.
func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest, userID string) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindDriverByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.LicenseNumber != nil {
		driver.LicenseNumber = *req.LicenseNumber
	}
	if req.LicenseExpiry != nil {
		driver.LicenseExpiry = req.LicenseExpiry
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	driver.LastUpdatedAt = time.Now().UTC()
	driver.LastUpdatedBy = userID

	if err := s.driverRepo.UpdateDriver(ctx, *driver); err != nil {
		s.LogError(ctx, err, "failed to update driver", "driver_id", driverID)
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

// DeactivateDriver implements portssvc.DriverWriterSvc.
func (s *driverService) DeactivateDriver(ctx context.Context, driverID string, userID string) error {
	if _, err := s.driverRepo.FindDriverByID(ctx, driverID); err != nil {
		return err
	}
	if err := s.driverRepo.DeactivateDriver(ctx, driverID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to deactivate driver", "driver_id", driverID)
		return fmt.Errorf("failed to deactivate driver: %w", err)
	}
	s.LogInfo(ctx, "driver deactivated", "driver_id", driverID)
	return nil
}
