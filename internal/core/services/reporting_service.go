package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
)

// reportingService builds reports on demand. Aging buckets are a function of
// (invoice date, now); nothing about them is ever stored, so the report is
// always consistent with the clock.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time // injectable for tests
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ReceivablesAging implements portssvc.ReportingSvcFacade.
func (s *reportingService) ReceivablesAging(ctx context.Context, clientID *string) (*domain.AgingReport, error) {
	rows, err := s.reportingRepo.GetOpenReceivables(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "failed to load open receivables")
		return nil, fmt.Errorf("failed to load open receivables: %w", err)
	}

	now := s.now().UTC()
	report := domain.AgingReport{
		AsOf: now,
		Rows: rows,
		Totals: map[domain.AgingBucket]decimal.Decimal{
			domain.BucketCurrent:    decimal.Zero,
			domain.BucketDays30:     decimal.Zero,
			domain.BucketDays60:     decimal.Zero,
			domain.BucketDays90Plus: decimal.Zero,
		},
		Overall: decimal.Zero,
	}

	for i := range report.Rows {
		bucket := domain.BucketForAge(report.Rows[i].InvoiceDate, now)
		report.Rows[i].Bucket = bucket
		report.Totals[bucket] = report.Totals[bucket].Add(report.Rows[i].BalanceAmount)
		report.Overall = report.Overall.Add(report.Rows[i].BalanceAmount)
	}

	return &report, nil
}

// FleetSummary implements portssvc.ReportingSvcFacade.
func (s *reportingService) FleetSummary(ctx context.Context) (*domain.FleetSummary, error) {
	summary, err := s.reportingRepo.GetFleetSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load fleet summary")
		return nil, fmt.Errorf("failed to load fleet summary: %w", err)
	}
	return summary, nil
}
