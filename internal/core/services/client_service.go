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

// clientService provides client master data operations. The outstanding balance
// is read-only here; it moves exclusively through the ledger service.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient implements portssvc.ClientWriterSvc.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:           uuid.NewString(),
		Name:               req.Name,
		GSTIN:              req.GSTIN,
		Address:            req.Address,
		Phone:              req.Phone,
		CreditLimit:        req.CreditLimit,
		OutstandingBalance: decimal.Zero,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to save client", "name", req.Name)
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "client created", "client_id", client.ClientID)
	return &client, nil
}

// GetClientByID implements portssvc.ClientReaderSvc.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

// ListClients implements portssvc.ClientReaderSvc.
func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) (*dto.ListClientsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	clients, err := s.clientRepo.FindClients(ctx, params.IncludeInactive, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	resp := dto.ToListClientsResponse(clients)
	return &resp, nil
}

// UpdateClient implements portssvc.ClientWriterSvc.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.GSTIN != nil {
		client.GSTIN = *req.GSTIN
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		}
		client.CreditLimit = *req.CreditLimit
	}
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "failed to update client", "client_id", clientID)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeactivateClient implements portssvc.ClientWriterSvc.
func (s *clientService) DeactivateClient(ctx context.Context, clientID string, userID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}
	if err := s.clientRepo.DeactivateClient(ctx, clientID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to deactivate client", "client_id", clientID)
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	s.LogInfo(ctx, "client deactivated", "client_id", clientID)
	return nil
}
