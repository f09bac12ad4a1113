package services

import (
	portsrepo "github.com/SscSPs/fleet_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and peer
// services. Construction order matters: sequence and availability feed the trip
// service, the ledger supplies the credit checker, users feed the token flows.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	c := &portssvc.ServiceContainer{}

	c.Sequence = NewSequenceService(repos.SequenceRepo)
	c.Availability = NewAvailabilityService(repos.TripRepo, repos.TruckRepo, repos.DriverRepo)

	c.Truck = NewTruckService(repos.TruckRepo)
	c.Driver = NewDriverService(repos.DriverRepo)
	c.Client = NewClientService(repos.ClientRepo)

	c.Ledger = NewLedgerService(repos.InvoiceRepo, repos.ClientRepo, repos.TripRepo, c.Sequence)
	c.Trip = NewTripService(
		repos.TripRepo,
		repos.TruckRepo,
		repos.DriverRepo,
		repos.ClientRepo,
		c.Availability,
		c.Sequence,
		c.Ledger,
		cfg.TripStartGracePeriod,
	)

	c.Expense = NewExpenseService(repos.ExpenseRepo, repos.TripRepo, repos.TruckRepo, c.Sequence)
	c.Reporting = NewReportingService(repos.ReportingRepo)

	c.User = NewUserService(repos.UserRepo)
	c.Token = NewTokenService(cfg, c.User)
	c.GoogleOAuth = NewGoogleOAuthHandlerService(cfg, c.User)

	return c
}
