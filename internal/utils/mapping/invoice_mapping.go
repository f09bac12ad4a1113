package mapping

import (
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		InvoiceNumber:    d.InvoiceNumber,
		TripID:           d.TripID,
		ClientID:         d.ClientID,
		InvoiceDate:      d.InvoiceDate,
		FreightCharges:   d.FreightCharges,
		LoadingCharges:   d.LoadingCharges,
		UnloadingCharges: d.UnloadingCharges,
		OtherCharges:     d.OtherCharges,
		TaxAmount:        d.TaxAmount,
		TotalCharges:     d.TotalCharges,
		AdvanceReceived:  d.AdvanceReceived,
		BalanceAmount:    d.BalanceAmount,
		PaymentStatus:    models.PaymentStatus(d.PaymentStatus),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:        m.InvoiceID,
		InvoiceNumber:    m.InvoiceNumber,
		TripID:           m.TripID,
		ClientID:         m.ClientID,
		InvoiceDate:      m.InvoiceDate,
		FreightCharges:   m.FreightCharges,
		LoadingCharges:   m.LoadingCharges,
		UnloadingCharges: m.UnloadingCharges,
		OtherCharges:     m.OtherCharges,
		TaxAmount:        m.TaxAmount,
		TotalCharges:     m.TotalCharges,
		AdvanceReceived:  m.AdvanceReceived,
		BalanceAmount:    m.BalanceAmount,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:    d.PaymentID,
		InvoiceID:    d.InvoiceID,
		ClientID:     d.ClientID,
		Amount:       d.Amount,
		Mode:         string(d.Mode),
		ReferenceNo:  d.ReferenceNo,
		ReceivedDate: d.ReceivedDate,
		State:        models.PaymentState(d.State),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:    m.PaymentID,
		InvoiceID:    m.InvoiceID,
		ClientID:     m.ClientID,
		Amount:       m.Amount,
		Mode:         domain.PaymentMode(m.Mode),
		ReferenceNo:  m.ReferenceNo,
		ReceivedDate: m.ReceivedDate,
		State:        domain.PaymentState(m.State),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
