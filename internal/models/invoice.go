package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates how much of an invoice has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// Invoice ("builty") is the persistence model for a billing document.
type Invoice struct {
	InvoiceID     string `json:"invoiceID" db:"invoice_id"`
	InvoiceNumber string `json:"invoiceNumber" db:"invoice_number"`
	TripID        string `json:"tripID" db:"trip_id"`
	ClientID      string `json:"clientID" db:"client_id"`

	InvoiceDate time.Time `json:"invoiceDate" db:"invoice_date"`

	FreightCharges   decimal.Decimal `json:"freightCharges" db:"freight_charges"`
	LoadingCharges   decimal.Decimal `json:"loadingCharges" db:"loading_charges"`
	UnloadingCharges decimal.Decimal `json:"unloadingCharges" db:"unloading_charges"`
	OtherCharges     decimal.Decimal `json:"otherCharges" db:"other_charges"`
	TaxAmount        decimal.Decimal `json:"taxAmount" db:"tax_amount"`

	TotalCharges    decimal.Decimal `json:"totalCharges" db:"total_charges"`
	AdvanceReceived decimal.Decimal `json:"advanceReceived" db:"advance_received"`
	BalanceAmount   decimal.Decimal `json:"balanceAmount" db:"balance_amount"`

	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	AuditFields
}
