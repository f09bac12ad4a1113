package repositories

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
)

// ReportingRepository provides read-only aggregate queries for reports.
type ReportingRepository interface {
	// GetOpenReceivables retrieves every non-PAID invoice joined with its client
	// name, for on-demand aging classification. Nil clientID means all clients.
	GetOpenReceivables(ctx context.Context, clientID *string) ([]domain.AgingRow, error)

	// GetFleetSummary retrieves headline counts for the dashboard.
	GetFleetSummary(ctx context.Context) (*domain.FleetSummary, error)
}
