package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
)

// ReportingSvcFacade builds on-demand reports. Nothing here is persisted;
// aging buckets are computed from invoice dates at call time.
type ReportingSvcFacade interface {
	// ReceivablesAging buckets every open invoice balance by age. clientID
	// narrows the report to one client when set.
	ReceivablesAging(ctx context.Context, clientID *string) (*domain.AgingReport, error)

	// FleetSummary returns headline counts and totals for the dashboard.
	FleetSummary(ctx context.Context) (*domain.FleetSummary, error)
}
