package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TripRepo      TripRepositoryFacade
	TruckRepo     TruckRepositoryFacade
	DriverRepo    DriverRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	InvoiceRepo   InvoiceRepositoryFacade
	ExpenseRepo   ExpenseRepositoryFacade
	SequenceRepo  SequenceRepository
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepository
}
