package dto

import (
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingRowResponse represents one open invoice in the receivables aging report.
type AgingRowResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"`
	InvoiceDate   string          `json:"invoiceDate"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	Bucket        string          `json:"bucket"`
}

// AgingReportResponse represents the receivables aging report response.
type AgingReportResponse struct {
	AsOf   string             `json:"asOf"`
	Rows   []AgingRowResponse `json:"rows"`
	Totals struct {
		Current    decimal.Decimal `json:"current"`
		Days30     decimal.Decimal `json:"days30"`
		Days60     decimal.Decimal `json:"days60"`
		Days90Plus decimal.Decimal `json:"days90Plus"`
	} `json:"totals"`
	Overall decimal.Decimal `json:"overall"`
}

// FleetSummaryResponse represents the dashboard summary response.
type FleetSummaryResponse struct {
	ActiveTrucks   int             `json:"activeTrucks"`
	ActiveDrivers  int             `json:"activeDrivers"`
	PlannedTrips   int             `json:"plannedTrips"`
	RunningTrips   int             `json:"runningTrips"`
	CompletedTrips int             `json:"completedTrips"`
	Receivables    decimal.Decimal `json:"receivables"`
}

// ToAgingReportResponse converts a domain aging report to a DTO response
func ToAgingReportResponse(report *domain.AgingReport) AgingReportResponse {
	response := AgingReportResponse{
		AsOf:    report.AsOf.Format("2006-01-02"),
		Rows:    make([]AgingRowResponse, len(report.Rows)),
		Overall: report.Overall,
	}

	for i, row := range report.Rows {
		response.Rows[i] = AgingRowResponse{
			InvoiceID:     row.InvoiceID,
			InvoiceNumber: row.InvoiceNumber,
			ClientID:      row.ClientID,
			ClientName:    row.ClientName,
			InvoiceDate:   row.InvoiceDate.Format("2006-01-02"),
			BalanceAmount: row.BalanceAmount,
			Bucket:        string(row.Bucket),
		}
	}

	response.Totals.Current = report.Totals[domain.BucketCurrent]
	response.Totals.Days30 = report.Totals[domain.BucketDays30]
	response.Totals.Days60 = report.Totals[domain.BucketDays60]
	response.Totals.Days90Plus = report.Totals[domain.BucketDays90Plus]

	return response
}

// ToFleetSummaryResponse converts a domain fleet summary to a DTO response
func ToFleetSummaryResponse(summary *domain.FleetSummary) FleetSummaryResponse {
	return FleetSummaryResponse{
		ActiveTrucks:   summary.ActiveTrucks,
		ActiveDrivers:  summary.ActiveDrivers,
		PlannedTrips:   summary.PlannedTrips,
		RunningTrips:   summary.RunningTrips,
		CompletedTrips: summary.CompletedTrips,
		Receivables:    summary.Receivables,
	}
}
