package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
)

var (
	ErrTripNotCompleted  = errors.New("invoice can only be raised for a completed trip")
	ErrTripAlreadyBilled = errors.New("trip already has an invoice")
)

// ledgerService owns every write to invoice balances and client outstanding
// balances. Trip completion raises invoices through the trip repository but
// with the same invariants; everything else comes through here.
type ledgerService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientReader
	tripRepo    portsrepo.TripReader
	sequenceSvc portssvc.SequenceSvcFacade
	now         func() time.Time // injectable for tests
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientReader, tripRepo portsrepo.TripReader, sequenceSvc portssvc.SequenceSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		tripRepo:    tripRepo,
		sequenceSvc: sequenceSvc,
		now:         time.Now,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// OpenInvoice implements portssvc.LedgerWriterSvc.
func (s *ledgerService) OpenInvoice(ctx context.Context, req dto.OpenInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if req.FreightCharges.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: freight charges must be positive", apperrors.ErrInvalidAmount)
	}
	for name, amt := range map[string]decimal.Decimal{
		"loadingCharges":   req.LoadingCharges,
		"unloadingCharges": req.UnloadingCharges,
		"otherCharges":     req.OtherCharges,
		"taxAmount":        req.TaxAmount,
		"advanceReceived":  req.AdvanceReceived,
	} {
		if amt.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrInvalidAmount, name)
		}
	}

	trip, err := s.tripRepo.FindTripByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != domain.TripCompleted {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConflict, ErrTripNotCompleted)
	}
	if trip.InvoiceID != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDuplicate, ErrTripAlreadyBilled)
	}

	total := req.FreightCharges.
		Add(req.LoadingCharges).
		Add(req.UnloadingCharges).
		Add(req.OtherCharges).
		Add(req.TaxAmount)
	if req.AdvanceReceived.GreaterThan(total) {
		return nil, fmt.Errorf("%w: advance received cannot exceed total charges", apperrors.ErrInvalidAmount)
	}

	invoiceNumber, err := s.sequenceSvc.NextSequenceNumber(ctx, invoiceNumberPrefix)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	invoiceDate := now
	if req.InvoiceDate != nil {
		invoiceDate = req.InvoiceDate.UTC()
	}

	invoice := domain.Invoice{
		InvoiceID:        uuid.NewString(),
		InvoiceNumber:    invoiceNumber,
		TripID:           trip.TripID,
		ClientID:         trip.ClientID,
		InvoiceDate:      invoiceDate,
		FreightCharges:   req.FreightCharges,
		LoadingCharges:   req.LoadingCharges,
		UnloadingCharges: req.UnloadingCharges,
		OtherCharges:     req.OtherCharges,
		TaxAmount:        req.TaxAmount,
		TotalCharges:     total,
		AdvanceReceived:  req.AdvanceReceived,
		BalanceAmount:    total.Sub(req.AdvanceReceived),
		PaymentStatus:    domain.DerivePaymentStatus(total, req.AdvanceReceived),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", "trip_id", req.TripID)
		return nil, err
	}

	s.LogInfo(ctx, "invoice opened", "invoice_id", invoice.InvoiceID, "invoice_number", invoiceNumber)
	return &invoice, nil
}

// ApplyPayment implements portssvc.LedgerWriterSvc.
func (s *ledgerService) ApplyPayment(ctx context.Context, invoiceID string, req dto.ApplyPaymentRequest, userID string) (*domain.Invoice, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrInvalidAmount)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	// Cheap pre-check; the authoritative comparison happens under the invoice
	// row lock inside the repository.
	if req.Amount.GreaterThan(invoice.BalanceAmount) {
		return nil, fmt.Errorf("%w: amount %s exceeds balance %s", apperrors.ErrExceedsBalance, req.Amount, invoice.BalanceAmount)
	}

	now := s.now().UTC()
	receivedDate := now
	if req.ReceivedDate != nil {
		receivedDate = req.ReceivedDate.UTC()
	}

	payment := domain.Payment{
		PaymentID:    uuid.NewString(),
		InvoiceID:    invoice.InvoiceID,
		ClientID:     invoice.ClientID,
		Amount:       req.Amount,
		Mode:         req.Mode,
		ReferenceNo:  req.ReferenceNo,
		ReceivedDate: receivedDate,
		State:        domain.PaymentReceived,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	updated, err := s.invoiceRepo.ApplyPayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "failed to apply payment", "invoice_id", invoiceID)
		return nil, err
	}

	s.LogInfo(ctx, "payment applied", "invoice_id", invoiceID, "payment_id", payment.PaymentID, "amount", req.Amount.String())
	return updated, nil
}

// ReversePayment implements portssvc.LedgerWriterSvc.
func (s *ledgerService) ReversePayment(ctx context.Context, paymentID string, userID string) (*domain.Invoice, error) {
	updated, err := s.invoiceRepo.ReversePayment(ctx, paymentID, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to reverse payment", "payment_id", paymentID)
		return nil, err
	}

	s.LogInfo(ctx, "payment reversed", "payment_id", paymentID, "invoice_id", updated.InvoiceID)
	return updated, nil
}

// ClearPayment implements portssvc.LedgerWriterSvc.
func (s *ledgerService) ClearPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	cleared, err := s.invoiceRepo.ClearPayment(ctx, paymentID, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to clear payment", "payment_id", paymentID)
		return nil, err
	}

	s.LogInfo(ctx, "payment cleared", "payment_id", paymentID, "invoice_id", cleared.InvoiceID)
	return cleared, nil
}

// CreditCheck implements portssvc.CreditCheckerSvc.
func (s *ledgerService) CreditCheck(ctx context.Context, clientID string, proposedAmount decimal.Decimal) (bool, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return false, err
	}

	// A zero limit means credit checking is disabled for this client.
	if client.CreditLimit.IsZero() {
		return true, nil
	}

	return client.OutstandingBalance.Add(proposedAmount).LessThanOrEqual(client.CreditLimit), nil
}

// GetInvoiceByID implements portssvc.LedgerReaderSvc.
func (s *ledgerService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// ListInvoices implements portssvc.LedgerReaderSvc.
func (s *ledgerService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	var status *domain.PaymentStatus
	if params.Status != nil {
		st := domain.PaymentStatus(*params.Status)
		switch st {
		case domain.PaymentPending, domain.PaymentPartial, domain.PaymentPaid:
			status = &st
		default:
			return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, *params.Status)
		}
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, params.ClientID, status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	resp := dto.ToListInvoicesResponse(invoices, nextToken)
	return &resp, nil
}

// ListPaymentsByInvoice implements portssvc.LedgerReaderSvc.
func (s *ledgerService) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
}

// ListPaymentsByClient implements portssvc.LedgerReaderSvc.
func (s *ledgerService) ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.FindPaymentsByClientID(ctx, clientID)
}
