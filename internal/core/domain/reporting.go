package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket classifies an unpaid invoice balance by elapsed days since invoicing.
type AgingBucket string

const (
	BucketCurrent    AgingBucket = "CURRENT"      // age <= 30 days
	BucketDays30     AgingBucket = "DAYS_30"      // 31-60 days
	BucketDays60     AgingBucket = "DAYS_60"      // 61-90 days
	BucketDays90Plus AgingBucket = "DAYS_90_PLUS" // > 90 days
)

// BucketForAge returns the aging bucket for an invoice dated invoiceDate as of now.
// Buckets are computed on demand and never stored.
func BucketForAge(invoiceDate, now time.Time) AgingBucket {
	days := int(now.Sub(invoiceDate).Hours() / 24)
	switch {
	case days <= 30:
		return BucketCurrent
	case days <= 60:
		return BucketDays30
	case days <= 90:
		return BucketDays60
	default:
		return BucketDays90Plus
	}
}

// AgingRow is one non-PAID invoice classified into a bucket.
type AgingRow struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	Bucket        AgingBucket     `json:"bucket"`
}

// AgingReport aggregates receivables by bucket, optionally for a single client.
type AgingReport struct {
	AsOf    time.Time                       `json:"asOf"`
	Rows    []AgingRow                      `json:"rows"`
	Totals  map[AgingBucket]decimal.Decimal `json:"totals"`
	Overall decimal.Decimal                 `json:"overall"`
}

// FleetSummary holds headline counts for the back-office dashboard.
type FleetSummary struct {
	ActiveTrucks   int             `json:"activeTrucks"`
	ActiveDrivers  int             `json:"activeDrivers"`
	PlannedTrips   int             `json:"plannedTrips"`
	RunningTrips   int             `json:"runningTrips"`
	CompletedTrips int             `json:"completedTrips"`
	Receivables    decimal.Decimal `json:"receivables"`
}
