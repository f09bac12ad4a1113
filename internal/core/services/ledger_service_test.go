package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/core/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, clientID *string, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, clientID, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Invoice), returnedNextToken, args.Error(2)
}

func (m *MockInvoiceRepository) FindUnpaidInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) InsertInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ReversePayment(ctx context.Context, paymentID string, actorID string) (*domain.Invoice, error) {
	args := m.Called(ctx, paymentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ClearPayment(ctx context.Context, paymentID string, actorID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockInvoiceRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockInvoiceRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockInvoiceRepository) FindPaymentsByClientID(ctx context.Context, clientID string) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockClientRepo  *MockClientReader
	mockTripRepo    *MockTripRepository
	mockSequenceSvc *MockSequenceService
	service         portssvc.LedgerSvcFacade

	client        domain.Client
	completedTrip domain.Trip
	userID        string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientReader)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockSequenceSvc = new(MockSequenceService)
	suite.service = services.NewLedgerService(suite.mockInvoiceRepo, suite.mockClientRepo, suite.mockTripRepo, suite.mockSequenceSvc)

	suite.userID = uuid.NewString()
	suite.client = domain.Client{
		ClientID:           uuid.NewString(),
		Name:               "Test Client",
		CreditLimit:        decimal.NewFromInt(100000),
		OutstandingBalance: decimal.NewFromInt(20000),
		IsActive:           true,
	}

	actualEnd := time.Now().UTC().Add(-time.Hour)
	suite.completedTrip = domain.Trip{
		TripID:    uuid.NewString(),
		ClientID:  suite.client.ClientID,
		Status:    domain.TripCompleted,
		ActualEnd: &actualEnd,
	}
}

func (suite *LedgerServiceTestSuite) validOpenInvoiceRequest() dto.OpenInvoiceRequest {
	return dto.OpenInvoiceRequest{
		TripID:          suite.completedTrip.TripID,
		FreightCharges:  decimal.NewFromInt(45000),
		LoadingCharges:  decimal.NewFromInt(2000),
		TaxAmount:       decimal.NewFromInt(2350),
		AdvanceReceived: decimal.NewFromInt(10000),
	}
}

// --- OpenInvoice ---

func (suite *LedgerServiceTestSuite) TestOpenInvoice_Success() {
	ctx := context.Background()
	req := suite.validOpenInvoiceRequest()
	invoiceNumber := "INV202608310007"

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&suite.completedTrip, nil).Once()
	suite.mockSequenceSvc.On("NextSequenceNumber", ctx, "INV").Return(invoiceNumber, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.OpenInvoice(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal(invoiceNumber, invoice.InvoiceNumber)
	suite.Equal(suite.completedTrip.TripID, invoice.TripID)
	suite.Equal(suite.client.ClientID, invoice.ClientID)
	suite.True(invoice.TotalCharges.Equal(decimal.NewFromInt(49350)))
	suite.True(invoice.BalanceAmount.Equal(decimal.NewFromInt(39350)))
	suite.Equal(domain.PaymentPartial, invoice.PaymentStatus)
	suite.Equal(suite.userID, invoice.CreatedBy)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestOpenInvoice_TripNotCompleted() {
	ctx := context.Background()
	req := suite.validOpenInvoiceRequest()
	runningTrip := suite.completedTrip
	runningTrip.Status = domain.TripRunning

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&runningTrip, nil).Once()

	_, err := suite.service.OpenInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestOpenInvoice_TripAlreadyBilled() {
	ctx := context.Background()
	req := suite.validOpenInvoiceRequest()
	billedTrip := suite.completedTrip
	existingInvoiceID := uuid.NewString()
	billedTrip.InvoiceID = &existingInvoiceID

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&billedTrip, nil).Once()

	_, err := suite.service.OpenInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockSequenceSvc.AssertNotCalled(suite.T(), "NextSequenceNumber", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestOpenInvoice_AdvanceExceedsTotal() {
	ctx := context.Background()
	req := suite.validOpenInvoiceRequest()
	req.AdvanceReceived = decimal.NewFromInt(99999)

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&suite.completedTrip, nil).Once()

	_, err := suite.service.OpenInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestOpenInvoice_NonPositiveFreight() {
	ctx := context.Background()
	req := suite.validOpenInvoiceRequest()
	req.FreightCharges = decimal.Zero

	_, err := suite.service.OpenInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "FindTripByID", mock.Anything, mock.Anything)
}

// --- ApplyPayment ---

func (suite *LedgerServiceTestSuite) openInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:       uuid.NewString(),
		InvoiceNumber:   "INV202608310008",
		TripID:          suite.completedTrip.TripID,
		ClientID:        suite.client.ClientID,
		TotalCharges:    decimal.NewFromInt(49350),
		AdvanceReceived: decimal.NewFromInt(10000),
		BalanceAmount:   decimal.NewFromInt(39350),
		PaymentStatus:   domain.PaymentPartial,
	}
}

func (suite *LedgerServiceTestSuite) TestApplyPayment_Success() {
	ctx := context.Background()
	invoice := suite.openInvoice()
	req := dto.ApplyPaymentRequest{
		Amount:      decimal.NewFromInt(15000),
		Mode:        domain.ModeTransfer,
		ReferenceNo: "UTR123456",
	}

	updated := *invoice
	updated.AdvanceReceived = decimal.NewFromInt(25000)
	updated.BalanceAmount = decimal.NewFromInt(24350)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("ApplyPayment", ctx, mock.AnythingOfType("domain.Payment")).Return(&updated, nil).Once()

	result, err := suite.service.ApplyPayment(ctx, invoice.InvoiceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.BalanceAmount.Equal(decimal.NewFromInt(24350)))

	payment := suite.mockInvoiceRepo.Calls[1].Arguments.Get(1).(domain.Payment)
	suite.Equal(invoice.InvoiceID, payment.InvoiceID)
	suite.Equal(invoice.ClientID, payment.ClientID)
	suite.Equal(domain.PaymentReceived, payment.State)
	suite.True(payment.Amount.Equal(req.Amount))
	suite.Equal(domain.ModeTransfer, payment.Mode)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApplyPayment_ExceedsBalance() {
	ctx := context.Background()
	invoice := suite.openInvoice()
	req := dto.ApplyPaymentRequest{
		Amount: invoice.BalanceAmount.Add(decimal.NewFromInt(1)),
		Mode:   domain.ModeCash,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	_, err := suite.service.ApplyPayment(ctx, invoice.InvoiceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExceedsBalance)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApplyPayment_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.ApplyPayment(ctx, uuid.NewString(), dto.ApplyPaymentRequest{Amount: decimal.Zero, Mode: domain.ModeCash}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

// --- ReversePayment ---

func (suite *LedgerServiceTestSuite) TestReversePayment_Success() {
	ctx := context.Background()
	invoice := suite.openInvoice()
	paymentID := uuid.NewString()

	suite.mockInvoiceRepo.On("ReversePayment", ctx, paymentID, suite.userID).Return(invoice, nil).Once()

	result, err := suite.service.ReversePayment(ctx, paymentID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(invoice.InvoiceID, result.InvoiceID)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReversePayment_AlreadyReversed() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockInvoiceRepo.On("ReversePayment", ctx, paymentID, suite.userID).Return(nil, apperrors.ErrAlreadyReversed).Once()

	_, err := suite.service.ReversePayment(ctx, paymentID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
}

// --- ClearPayment ---

func (suite *LedgerServiceTestSuite) TestClearPayment_Success() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	cleared := &domain.Payment{
		PaymentID: paymentID,
		InvoiceID: uuid.NewString(),
		ClientID:  suite.client.ClientID,
		Amount:    decimal.NewFromInt(15000),
		Mode:      domain.ModeCheque,
		State:     domain.PaymentCleared,
	}

	suite.mockInvoiceRepo.On("ClearPayment", ctx, paymentID, suite.userID).Return(cleared, nil).Once()

	result, err := suite.service.ClearPayment(ctx, paymentID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentCleared, result.State)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestClearPayment_Bounced() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockInvoiceRepo.On("ClearPayment", ctx, paymentID, suite.userID).Return(nil, apperrors.ErrAlreadyReversed).Once()

	_, err := suite.service.ClearPayment(ctx, paymentID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
}

// --- CreditCheck ---

func (suite *LedgerServiceTestSuite) TestCreditCheck_WithinLimit() {
	ctx := context.Background()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()

	withinLimit, err := suite.service.CreditCheck(ctx, suite.client.ClientID, decimal.NewFromInt(80000))

	suite.Require().NoError(err)
	suite.True(withinLimit)
}

func (suite *LedgerServiceTestSuite) TestCreditCheck_ExceedsLimit() {
	ctx := context.Background()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()

	withinLimit, err := suite.service.CreditCheck(ctx, suite.client.ClientID, decimal.NewFromInt(80001))

	suite.Require().NoError(err)
	suite.False(withinLimit)
}

func (suite *LedgerServiceTestSuite) TestCreditCheck_ZeroLimitDisablesCheck() {
	ctx := context.Background()
	unlimited := suite.client
	unlimited.CreditLimit = decimal.Zero

	suite.mockClientRepo.On("FindClientByID", ctx, unlimited.ClientID).Return(&unlimited, nil).Once()

	withinLimit, err := suite.service.CreditCheck(ctx, unlimited.ClientID, decimal.NewFromInt(10000000))

	suite.Require().NoError(err)
	suite.True(withinLimit)
}

// --- ListInvoices ---

func (suite *LedgerServiceTestSuite) TestListInvoices_UnknownStatus() {
	ctx := context.Background()
	bad := "OVERDUE"

	_, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Status: &bad})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
