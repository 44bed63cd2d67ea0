package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork   UnitOfWork
	ItemRepo     ItemRepositoryFacade
	PartyRepo    PartyRepository
	PurchaseRepo PurchaseRepository
	SaleRepo     SaleRepository
	PaymentRepo  PaymentRepository
	MovementRepo StockMovementRepositoryFacade
	HealthRepo   HealthRepository
}
