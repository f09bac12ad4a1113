package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fleet_logistics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetOpenReceivables retrieves every non-PAID invoice joined with its client
// name. Bucket classification happens in the service as of its clock, never here.
func (r *PgxReportingRepository) GetOpenReceivables(ctx context.Context, clientID *string) ([]domain.AgingRow, error) {
	query := `
		SELECT i.invoice_id, i.invoice_number, i.client_id, c.name, i.invoice_date, i.balance_amount
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.payment_status <> 'PAID'
	`
	args := []interface{}{}
	if clientID != nil {
		args = append(args, *clientID)
		query += ` AND i.client_id = $1`
	}
	query += ` ORDER BY i.invoice_date ASC, i.invoice_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query open receivables: %w", err)
	}
	defer rows.Close()

	agingRows := []domain.AgingRow{}
	for rows.Next() {
		var row domain.AgingRow
		err := rows.Scan(
			&row.InvoiceID,
			&row.InvoiceNumber,
			&row.ClientID,
			&row.ClientName,
			&row.InvoiceDate,
			&row.BalanceAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receivable row: %w", err)
		}
		agingRows = append(agingRows, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receivable rows: %w", rows.Err())
	}

	return agingRows, nil
}

// GetFleetSummary retrieves headline counts for the dashboard in one round trip.
func (r *PgxReportingRepository) GetFleetSummary(ctx context.Context) (*domain.FleetSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trucks WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM drivers WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM trips WHERE status = 'PLANNED'),
			(SELECT COUNT(*) FROM trips WHERE status = 'RUNNING'),
			(SELECT COUNT(*) FROM trips WHERE status = 'COMPLETED'),
			(SELECT COALESCE(SUM(balance_amount), 0) FROM invoices WHERE payment_status <> 'PAID');
	`
	var summary domain.FleetSummary
	err := r.Pool.QueryRow(ctx, query).Scan(
		&summary.ActiveTrucks,
		&summary.ActiveDrivers,
		&summary.PlannedTrips,
		&summary.RunningTrips,
		&summary.CompletedTrips,
		&summary.Receivables,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet summary: %w", err)
	}

	return &summary, nil
}
