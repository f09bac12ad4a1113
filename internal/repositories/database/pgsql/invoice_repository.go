package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	"github.com/SscSPs/fleet_logistics_app/internal/models"
	"github.com/SscSPs/fleet_logistics_app/internal/utils/mapping"
	"github.com/SscSPs/fleet_logistics_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
	clientRepo *PgxClientRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool, clientRepo *PgxClientRepository) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		clientRepo:     clientRepo,
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, trip_id, client_id, invoice_date,
	freight_charges, loading_charges, unloading_charges, other_charges, tax_amount,
	total_charges, advance_received, balance_amount, payment_status,
	created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `payment_id, invoice_id, client_id, amount, mode, reference_no, received_date, state,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.TripID,
		&m.ClientID,
		&m.InvoiceDate,
		&m.FreightCharges,
		&m.LoadingCharges,
		&m.UnloadingCharges,
		&m.OtherCharges,
		&m.TaxAmount,
		&m.TotalCharges,
		&m.AdvanceReceived,
		&m.BalanceAmount,
		&m.PaymentStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.InvoiceID,
		&m.ClientID,
		&m.Amount,
		&m.Mode,
		&m.ReferenceNo,
		&m.ReceivedDate,
		&m.State,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// InsertInvoiceInTx persists a new invoice and adds its balance amount to the
// client's outstanding balance, inside the caller's transaction.
func (r *PgxInvoiceRepository) InsertInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.TripID, m.ClientID, m.InvoiceDate,
		m.FreightCharges, m.LoadingCharges, m.UnloadingCharges, m.OtherCharges, m.TaxAmount,
		m.TotalCharges, m.AdvanceReceived, m.BalanceAmount, m.PaymentStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice for trip %s already exists: %w", m.TripID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	if invoice.BalanceAmount.IsPositive() {
		if err := r.clientRepo.AdjustOutstandingInTx(ctx, tx, invoice.ClientID, invoice.BalanceAmount, invoice.CreatedBy, invoice.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}

// SaveInvoice persists a manually opened invoice, links it to its trip and adds
// the balance amount to the client's outstanding balance in one transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.InsertInvoiceInTx(ctx, tx, invoice); err != nil {
		return err
	}

	// The guard on invoice_id catches a concurrent invoice for the same trip.
	linkQuery := `
		UPDATE trips
		SET invoice_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE trip_id = $4 AND invoice_id IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, linkQuery, invoice.InvoiceID, invoice.LastUpdatedAt, invoice.LastUpdatedBy, invoice.TripID)
	if err != nil {
		return fmt.Errorf("failed to link invoice to trip %s: %w", invoice.TripID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s already billed or missing: %w", invoice.TripID, apperrors.ErrDuplicate)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// ListInvoices retrieves invoices newest first with token-based pagination over
// (created_at, invoice_id), optionally filtered by client and payment status.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, clientID *string, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + invoiceColumns + ` FROM invoices`)

	args := []interface{}{}
	conditions := []string{}

	if clientID != nil {
		args = append(args, *clientID)
		conditions = append(conditions, `client_id = $`+strconv.Itoa(len(args)))
	}
	if status != nil {
		args = append(args, string(*status))
		conditions = append(conditions, `payment_status = $`+strconv.Itoa(len(args)))
	}

	if nextToken != nil && *nextToken != "" {
		cursorCreatedAt, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		args = append(args, cursorCreatedAt)
		createdAtPos := len(args)
		args = append(args, cursorID)
		idPos := len(args)
		conditions = append(conditions, fmt.Sprintf(`(created_at, invoice_id) < ($%d, $%d)`, createdAtPos, idPos))
	}

	if len(conditions) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(conditions, ` AND `))
	}

	args = append(args, limit+1)
	sb.WriteString(` ORDER BY created_at DESC, invoice_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(modelInvoices) > limit {
		modelInvoices = modelInvoices[:limit]
		last := modelInvoices[len(modelInvoices)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.InvoiceID)
		newNextToken = &token
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), newNextToken, nil
}

func (r *PgxInvoiceRepository) FindUnpaidInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE client_id = $1 AND payment_status <> 'PAID'
		ORDER BY invoice_date ASC, invoice_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid invoices for client %s: %w", clientID, err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

// lockInvoice locks an invoice row and returns its current state. Every balance
// mutation goes through this lock, so the comparison against the remaining
// balance is authoritative.
func (r *PgxInvoiceRepository) lockInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) (models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1 FOR UPDATE;`
	m, err := scanInvoice(tx.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Invoice{}, fmt.Errorf("invoice %s not found: %w", invoiceID, apperrors.ErrNotFound)
		}
		return models.Invoice{}, fmt.Errorf("failed to lock invoice %s: %w", invoiceID, err)
	}
	return m, nil
}

// updateInvoiceBalancesInTx writes the advance/balance/status triple of a locked invoice.
func updateInvoiceBalancesInTx(ctx context.Context, tx pgx.Tx, m models.Invoice) error {
	query := `
		UPDATE invoices
		SET advance_received = $1, balance_amount = $2, payment_status = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $6;
	`
	_, err := tx.Exec(ctx, query,
		m.AdvanceReceived, m.BalanceAmount, m.PaymentStatus,
		m.LastUpdatedAt, m.LastUpdatedBy, m.InvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s balances: %w", m.InvoiceID, err)
	}
	return nil
}

// ApplyPayment records a payment against an invoice in one transaction: invoice
// row lock, balance guard, invoice update, payment insert and client
// outstanding-balance decrement. Returns the updated invoice.
func (r *PgxInvoiceRepository) ApplyPayment(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m, err := r.lockInvoice(ctx, tx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}
	inv := mapping.ToDomainInvoice(m)

	if payment.Amount.GreaterThan(inv.BalanceAmount) {
		return nil, fmt.Errorf("payment of %s against balance %s: %w", payment.Amount, inv.BalanceAmount, apperrors.ErrExceedsBalance)
	}

	inv.ApplyReceipt(payment.Amount)
	inv.LastUpdatedAt = payment.CreatedAt
	inv.LastUpdatedBy = payment.CreatedBy

	if err := updateInvoiceBalancesInTx(ctx, tx, mapping.ToModelInvoice(inv)); err != nil {
		return nil, err
	}

	pm := mapping.ToModelPayment(payment)
	insertQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, insertQuery,
		pm.PaymentID, pm.InvoiceID, pm.ClientID, pm.Amount, pm.Mode, pm.ReferenceNo, pm.ReceivedDate, pm.State,
		pm.CreatedAt, pm.CreatedBy, pm.LastUpdatedAt, pm.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("payment with reference %s already recorded: %w", pm.ReferenceNo, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	if err := r.clientRepo.AdjustOutstandingInTx(ctx, tx, payment.ClientID, payment.Amount.Neg(), payment.CreatedBy, payment.CreatedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &inv, nil
}

// ReversePayment marks a payment BOUNCED and undoes its effect on the invoice
// and the client's outstanding balance in one transaction. Returns the updated
// invoice.
func (r *PgxInvoiceRepository) ReversePayment(ctx context.Context, paymentID string, actorID string) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	lockQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 FOR UPDATE;`
	pm, err := scanPayment(tx.QueryRow(ctx, lockQuery, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("payment %s not found: %w", paymentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock payment %s: %w", paymentID, err)
	}

	if pm.State == models.PaymentBounced {
		return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrAlreadyReversed)
	}

	m, err := r.lockInvoice(ctx, tx, pm.InvoiceID)
	if err != nil {
		return nil, err
	}

	now := timeNowUTC()
	markQuery := `
		UPDATE payments
		SET state = $1, last_updated_at = $2, last_updated_by = $3
		WHERE payment_id = $4;
	`
	if _, err := tx.Exec(ctx, markQuery, models.PaymentBounced, now, actorID, paymentID); err != nil {
		return nil, fmt.Errorf("failed to mark payment %s bounced: %w", paymentID, err)
	}

	inv := mapping.ToDomainInvoice(m)
	inv.ApplyReceipt(pm.Amount.Neg())
	inv.LastUpdatedAt = now
	inv.LastUpdatedBy = actorID

	if err := updateInvoiceBalancesInTx(ctx, tx, mapping.ToModelInvoice(inv)); err != nil {
		return nil, err
	}

	if err := r.clientRepo.AdjustOutstandingInTx(ctx, tx, pm.ClientID, pm.Amount, actorID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &inv, nil
}

// ClearPayment marks a RECEIVED payment CLEARED once the bank confirms it.
// Balances are untouched; they moved when the payment was applied.
func (r *PgxInvoiceRepository) ClearPayment(ctx context.Context, paymentID string, actorID string) (*domain.Payment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	lockQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 FOR UPDATE;`
	pm, err := scanPayment(tx.QueryRow(ctx, lockQuery, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("payment %s not found: %w", paymentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock payment %s: %w", paymentID, err)
	}

	switch pm.State {
	case models.PaymentBounced:
		return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrAlreadyReversed)
	case models.PaymentCleared:
		return nil, fmt.Errorf("payment %s already cleared: %w", paymentID, apperrors.ErrConflict)
	}

	now := timeNowUTC()
	markQuery := `
		UPDATE payments
		SET state = $1, last_updated_at = $2, last_updated_by = $3
		WHERE payment_id = $4;
	`
	if _, err := tx.Exec(ctx, markQuery, models.PaymentCleared, now, actorID, paymentID); err != nil {
		return nil, fmt.Errorf("failed to mark payment %s cleared: %w", paymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	pm.State = models.PaymentCleared
	pm.LastUpdatedAt = now
	pm.LastUpdatedBy = actorID
	d := mapping.ToDomainPayment(pm)
	return &d, nil
}

func (r *PgxInvoiceRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxInvoiceRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	return r.findPayments(ctx, `invoice_id`, invoiceID)
}

func (r *PgxInvoiceRepository) FindPaymentsByClientID(ctx context.Context, clientID string) ([]domain.Payment, error) {
	return r.findPayments(ctx, `client_id`, clientID)
}

func (r *PgxInvoiceRepository) findPayments(ctx context.Context, column, id string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ` + column + ` = $1 ORDER BY received_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by %s %s: %w", column, id, err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
