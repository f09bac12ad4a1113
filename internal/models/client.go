package models

import "github.com/shopspring/decimal"

// Client is the persistence model for a billed customer.
type Client struct {
	ClientID           string          `json:"clientID" db:"client_id"`
	Name               string          `json:"name" db:"name"`
	GSTIN              string          `json:"gstin" db:"gstin"`
	Address            string          `json:"address" db:"address"`
	Phone              string          `json:"phone" db:"phone"`
	CreditLimit        decimal.Decimal `json:"creditLimit" db:"credit_limit"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance" db:"outstanding_balance"`
	IsActive           bool            `json:"isActive" db:"is_active"`
	AuditFields
}
