package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by their ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClients retrieves a paginated list of clients.
	FindClients(ctx context.Context, includeInactive bool, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates a client's master data. OutstandingBalance is excluded;
	// only the ledger moves it, through AdjustOutstandingInTx.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeactivateClient flags a client inactive.
	DeactivateClient(ctx context.Context, clientID string, updatedBy string, updatedAt time.Time) error

	// AdjustOutstandingInTx adds delta (positive or negative) to a client's
	// outstanding balance inside an existing transaction. The single UPDATE is
	// the serialization point for concurrent ledger writes against one client.
	AdjustOutstandingInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
