package models

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

// Payment is one row of the append-only payment log.
type Payment struct {
	PaymentID string `json:"paymentID" db:"payment_id"`
	InvoiceID string `json:"invoiceID" db:"invoice_id"`
	ClientID  string `json:"clientID" db:"client_id"`

	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Mode         string          `json:"mode" db:"mode"`
	ReferenceNo  string          `json:"referenceNo" db:"reference_no"`
	ReceivedDate time.Time       `json:"receivedDate" db:"received_date"`

	State PaymentState `json:"state" db:"state"`
	AuditFields
}
