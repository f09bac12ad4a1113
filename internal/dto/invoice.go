package dto

import (
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenInvoiceRequest defines the data needed to raise an invoice for a trip.
type OpenInvoiceRequest struct {
	TripID           string          `json:"tripID" binding:"required"`
	InvoiceDate      *time.Time      `json:"invoiceDate"` // defaults to now
	FreightCharges   decimal.Decimal `json:"freightCharges" binding:"required"`
	LoadingCharges   decimal.Decimal `json:"loadingCharges"`
	UnloadingCharges decimal.Decimal `json:"unloadingCharges"`
	OtherCharges     decimal.Decimal `json:"otherCharges"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	AdvanceReceived  decimal.Decimal `json:"advanceReceived"`
}

// ApplyPaymentRequest defines the data for recording a payment against an invoice.
type ApplyPaymentRequest struct {
	Amount       decimal.Decimal    `json:"amount" binding:"required"`
	Mode         domain.PaymentMode `json:"mode" binding:"required,oneof=CASH CHEQUE TRANSFER UPI"`
	ReferenceNo  string             `json:"referenceNo"`
	ReceivedDate *time.Time         `json:"receivedDate"` // defaults to now
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID        string               `json:"invoiceID"`
	InvoiceNumber    string               `json:"invoiceNumber"`
	TripID           string               `json:"tripID"`
	ClientID         string               `json:"clientID"`
	InvoiceDate      time.Time            `json:"invoiceDate"`
	FreightCharges   decimal.Decimal      `json:"freightCharges"`
	LoadingCharges   decimal.Decimal      `json:"loadingCharges"`
	UnloadingCharges decimal.Decimal      `json:"unloadingCharges"`
	OtherCharges     decimal.Decimal      `json:"otherCharges"`
	TaxAmount        decimal.Decimal      `json:"taxAmount"`
	TotalCharges     decimal.Decimal      `json:"totalCharges"`
	AdvanceReceived  decimal.Decimal      `json:"advanceReceived"`
	BalanceAmount    decimal.Decimal      `json:"balanceAmount"`
	PaymentStatus    domain.PaymentStatus `json:"paymentStatus"`
	CreatedAt        time.Time            `json:"createdAt"`
	CreatedBy        string               `json:"createdBy"`
	LastUpdatedAt    time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy    string               `json:"lastUpdatedBy"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID    string          `json:"paymentID"`
	InvoiceID    string          `json:"invoiceID"`
	ClientID     string          `json:"clientID"`
	Amount       decimal.Decimal `json:"amount"`
	Mode         string          `json:"mode"`
	ReferenceNo  string          `json:"referenceNo"`
	ReceivedDate time.Time       `json:"receivedDate"`
	State        string          `json:"state"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	ClientID  *string `form:"clientID"`
	Status    *string `form:"status"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse wraps the paginated list of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		InvoiceNumber:    inv.InvoiceNumber,
		TripID:           inv.TripID,
		ClientID:         inv.ClientID,
		InvoiceDate:      inv.InvoiceDate,
		FreightCharges:   inv.FreightCharges,
		LoadingCharges:   inv.LoadingCharges,
		UnloadingCharges: inv.UnloadingCharges,
		OtherCharges:     inv.OtherCharges,
		TaxAmount:        inv.TaxAmount,
		TotalCharges:     inv.TotalCharges,
		AdvanceReceived:  inv.AdvanceReceived,
		BalanceAmount:    inv.BalanceAmount,
		PaymentStatus:    inv.PaymentStatus,
		CreatedAt:        inv.CreatedAt,
		CreatedBy:        inv.CreatedBy,
		LastUpdatedAt:    inv.LastUpdatedAt,
		LastUpdatedBy:    inv.LastUpdatedBy,
	}
}

// ToListInvoicesResponse converts a slice of domain.Invoice plus a pagination token.
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken *string) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: res, NextToken: nextToken}
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		InvoiceID:    p.InvoiceID,
		ClientID:     p.ClientID,
		Amount:       p.Amount,
		Mode:         string(p.Mode),
		ReferenceNo:  p.ReferenceNo,
		ReceivedDate: p.ReceivedDate,
		State:        string(p.State),
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}
