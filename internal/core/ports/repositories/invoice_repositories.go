package repositories

import (
	"context"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices using token-based
	// pagination, optionally filtered by client and payment status.
	ListInvoices(ctx context.Context, clientID *string, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// FindUnpaidInvoicesByClient retrieves every non-PAID invoice for a client.
	FindUnpaidInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice and payment data. Each
// method is one atomic unit; invoice balance fields and the owning client's
// outstanding balance always move together or not at all.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and adds its balance amount to the
	// client's outstanding balance in one transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// InsertInvoiceInTx persists a new invoice and adjusts the client balance
	// inside an existing transaction (used by trip completion).
	InsertInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error

	// ApplyPayment records a payment against an invoice: locks the invoice row,
	// rejects amounts above the remaining balance with apperrors.ErrExceedsBalance,
	// updates advance/balance/status, decrements the client's outstanding balance
	// and appends the payment row, all in one transaction. Returns the updated
	// invoice.
	ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Invoice, error)

	// ReversePayment marks a payment BOUNCED and undoes its effect on the invoice
	// and client balances in one transaction. A second reversal of the same
	// payment fails with apperrors.ErrAlreadyReversed. Returns the updated invoice.
	ReversePayment(ctx context.Context, paymentID string, actorID string) (*domain.Invoice, error)

	// ClearPayment marks a RECEIVED payment CLEARED. Balances are untouched.
	// Clearing a BOUNCED payment fails with apperrors.ErrAlreadyReversed, clearing
	// twice with apperrors.ErrConflict. Returns the updated payment.
	ClearPayment(ctx context.Context, paymentID string, actorID string) (*domain.Payment, error)
}

// PaymentReader defines read operations for the payment log
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentsByInvoiceID retrieves the payment log of an invoice, oldest first.
	FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// FindPaymentsByClientID retrieves all payments received from a client.
	FindPaymentsByClientID(ctx context.Context, clientID string) ([]domain.Payment, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	PaymentReader
}
