package services

import (
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger is shared by purchases and sales so both write movements the same way.
	container.Ledger = NewLedgerService(repos.MovementRepo)

	container.Item = NewItemService(repos.ItemRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.Purchase = NewPurchaseService(repos.UnitOfWork, repos.PurchaseRepo, container.Ledger)
	container.Sale = NewSaleService(repos.UnitOfWork, repos.SaleRepo, container.Ledger)
	container.Payment = NewPaymentService(repos.PaymentRepo)
	container.Stock = NewStockService(repos.ItemRepo, repos.MovementRepo)
	container.Health = NewHealthService(repos.HealthRepo)

	return container
}
