package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

// ClientReaderSvc defines read operations on clients
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, params dto.ListClientsParams) (*dto.ListClientsResponse, error)
}

// ClientWriterSvc defines write operations on clients. Outstanding balances are
// never written here; they move only through the ledger.
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)
	DeactivateClient(ctx context.Context, clientID string, userID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
