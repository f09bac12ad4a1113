package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentState tracks the clearing state of one received payment.
type PaymentState string

const (
	PaymentReceived PaymentState = "RECEIVED"
	PaymentCleared  PaymentState = "CLEARED"
	PaymentBounced  PaymentState = "BOUNCED"
)

// PaymentMode identifies how a payment was made.
type PaymentMode string

const (
	ModeCash     PaymentMode = "CASH"
	ModeCheque   PaymentMode = "CHEQUE"
	ModeTransfer PaymentMode = "TRANSFER"
	ModeUPI      PaymentMode = "UPI"
)

// Payment is one entry in the append-only payment log of an invoice.
// A BOUNCED payment has had its effect on balances reversed.
type Payment struct {
	PaymentID string `json:"paymentID"` // Primary Key (UUID)
	InvoiceID string `json:"invoiceID"` // FK -> invoices.invoice_id
	ClientID  string `json:"clientID"`  // FK -> clients.client_id

	Amount       decimal.Decimal `json:"amount"` // Always positive
	Mode         PaymentMode     `json:"mode"`
	ReferenceNo  string          `json:"referenceNo"` // Cheque/UTR number; idempotency key for caller retries
	ReceivedDate time.Time       `json:"receivedDate"`

	State PaymentState `json:"state"`
	AuditFields
}
