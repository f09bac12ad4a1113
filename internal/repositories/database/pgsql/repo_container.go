package pgsql

import (
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against one shared pool.
// The trip and invoice repositories receive their collaborators directly so a
// trip completion or a payment can span tables inside one transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	truckRepo := newPgxTruckRepository(dbPool)
	driverRepo := newPgxDriverRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool, clientRepo)
	tripRepo := newPgxTripRepository(dbPool, truckRepo, invoiceRepo)

	return &portsrepo.RepositoryProvider{
		TripRepo:      tripRepo,
		TruckRepo:     truckRepo,
		DriverRepo:    driverRepo,
		ClientRepo:    clientRepo,
		InvoiceRepo:   invoiceRepo,
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		SequenceRepo:  newPgxSequenceRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
