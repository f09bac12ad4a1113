package domain

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

// Invoice ("builty") is the billing document raised against a client for a trip.
//
// Invariants, maintained by the ledger service on every write:
//
//	0 <= AdvanceReceived <= TotalCharges
//	BalanceAmount == TotalCharges - AdvanceReceived
//	PaymentStatus derived: PAID iff balance is zero, PENDING iff nothing received,
//	PARTIAL otherwise.
type Invoice struct {
	InvoiceID     string `json:"invoiceID"`     // Primary Key (UUID)
	InvoiceNumber string `json:"invoiceNumber"` // Business key, e.g. INV202601150001
	TripID        string `json:"tripID"`        // FK -> trips.trip_id
	ClientID      string `json:"clientID"`      // FK -> clients.client_id

	InvoiceDate time.Time `json:"invoiceDate"`

	FreightCharges   decimal.Decimal `json:"freightCharges"`
	LoadingCharges   decimal.Decimal `json:"loadingCharges"`
	UnloadingCharges decimal.Decimal `json:"unloadingCharges"`
	OtherCharges     decimal.Decimal `json:"otherCharges"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`

	TotalCharges    decimal.Decimal `json:"totalCharges"`
	AdvanceReceived decimal.Decimal `json:"advanceReceived"`
	BalanceAmount   decimal.Decimal `json:"balanceAmount"`

	PaymentStatus PaymentStatus `json:"paymentStatus"`
	AuditFields
}

// ApplyReceipt moves a received amount onto the invoice and recomputes the
// balance and payment status. A negative delta backs a receipt out again
// (payment reversal). Callers guard the delta against the remaining balance.
func (inv *Invoice) ApplyReceipt(delta decimal.Decimal) {
	inv.AdvanceReceived = inv.AdvanceReceived.Add(delta)
	inv.BalanceAmount = inv.TotalCharges.Sub(inv.AdvanceReceived)
	inv.PaymentStatus = DerivePaymentStatus(inv.TotalCharges, inv.AdvanceReceived)
}

// DerivePaymentStatus computes the payment status from received vs total.
func DerivePaymentStatus(totalCharges, advanceReceived decimal.Decimal) PaymentStatus {
	switch {
	case advanceReceived.GreaterThanOrEqual(totalCharges):
		return PaymentPaid
	case advanceReceived.IsPositive():
		return PaymentPartial
	default:
		return PaymentPending
	}
}
