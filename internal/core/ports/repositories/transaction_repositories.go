package repositories

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
)

// PartyRepository persists vendors and customers.
type PartyRepository interface {
	SaveParty(ctx context.Context, party domain.Party) error
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PurchaseRepository persists vendor bills with their embedded lines.
type PurchaseRepository interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// SaleRepository persists customer invoices with their embedded lines.
type SaleRepository interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// PaymentRepository persists payments.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// HealthRepository reports store connectivity.
type HealthRepository interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}
