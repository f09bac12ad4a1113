package domain

import (
	"github.com/shopspring/decimal"
)

// Client represents a billed customer of the fleet.
//
// OutstandingBalance mirrors the sum of balance amounts over the client's
// non-PAID invoices at all times. The ledger service is the only writer.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	Name     string `json:"name"`
	GSTIN    string `json:"gstin"` // Nullable tax identifier
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	// CreditLimit of zero means credit checking is disabled for this client.
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}
