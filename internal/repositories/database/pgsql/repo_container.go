package pgsql

import (
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	txRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UnitOfWork:   &BaseRepository{Pool: dbPool},
		ItemRepo:     newPgxItemRepository(dbPool),
		PartyRepo:    newPgxPartyRepository(dbPool),
		PurchaseRepo: txRepo,
		SaleRepo:     txRepo,
		PaymentRepo:  txRepo,
		MovementRepo: newPgxStockMovementRepository(dbPool),
		HealthRepo:   newPgxHealthRepository(dbPool),
	}
}
