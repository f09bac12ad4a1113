package services

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations on invoices and payments
type LedgerReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// ListPaymentsByInvoice retrieves the payment log of an invoice.
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// ListPaymentsByClient retrieves all payments received from a client.
	ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
}

// LedgerWriterSvc owns every write to invoice balances and client outstanding
// balances. No other code path mutates either.
type LedgerWriterSvc interface {
	// OpenInvoice creates an invoice for a trip's client and adds its balance to
	// the client's outstanding balance.
	OpenInvoice(ctx context.Context, req dto.OpenInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// ApplyPayment records a partial or full payment against an invoice.
	ApplyPayment(ctx context.Context, invoiceID string, req dto.ApplyPaymentRequest, userID string) (*domain.Invoice, error)

	// ReversePayment undoes a bounced cheque / failed transfer.
	ReversePayment(ctx context.Context, paymentID string, userID string) (*domain.Invoice, error)

	// ClearPayment records that the bank confirmed a cheque or transfer.
	ClearPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error)
}

// CreditCheckerSvc is the advisory credit gate used by trip and invoice creation.
type CreditCheckerSvc interface {
	// CreditCheck reports whether the client's outstanding balance plus the
	// proposed amount stays within their credit limit. A zero limit disables
	// checking. Read-only; callers treat a false result as a warning, not a block.
	CreditCheck(ctx context.Context, clientID string, proposedAmount decimal.Decimal) (bool, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	CreditCheckerSvc
}
