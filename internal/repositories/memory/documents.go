package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
)

func (s *Store) FindItemBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	defer s.lock(ctx)()
	for _, it := range s.items {
		if it.SKU == sku {
			found := it
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	defer s.lock(ctx)()
	return slices.Clone(s.items), nil
}

// SaveItem enforces SKU uniqueness the way the Postgres unique index does.
func (s *Store) SaveItem(ctx context.Context, item domain.Item) error {
	defer s.lock(ctx)()
	for _, it := range s.items {
		if it.SKU == item.SKU {
			return fmt.Errorf("%w: item with SKU %s already exists", apperrors.ErrDuplicate, item.SKU)
		}
	}
	s.items = append(s.items, item)
	return nil
}

func (s *Store) SaveParty(ctx context.Context, party domain.Party) error {
	defer s.lock(ctx)()
	switch party.Kind {
	case domain.PartyVendor:
		s.vendors = append(s.vendors, party)
	case domain.PartyCustomer:
		s.customers = append(s.customers, party)
	default:
		return fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, party.Kind)
	}
	return nil
}

func (s *Store) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	defer s.lock(ctx)()
	switch kind {
	case domain.PartyVendor:
		return slices.Clone(s.vendors), nil
	case domain.PartyCustomer:
		return slices.Clone(s.customers), nil
	}
	return nil, fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
}

func (s *Store) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	defer s.lock(ctx)()
	purchase.Items = slices.Clone(purchase.Items)
	s.purchases = append(s.purchases, purchase)
	return nil
}

func (s *Store) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	defer s.lock(ctx)()
	return slices.Clone(s.purchases), nil
}

func (s *Store) SaveSale(ctx context.Context, sale domain.Sale) error {
	defer s.lock(ctx)()
	sale.Items = slices.Clone(sale.Items)
	s.sales = append(s.sales, sale)
	return nil
}

func (s *Store) ListSales(ctx context.Context) ([]domain.Sale, error) {
	defer s.lock(ctx)()
	return slices.Clone(s.sales), nil
}

func (s *Store) SavePayment(ctx context.Context, payment domain.Payment) error {
	defer s.lock(ctx)()
	s.payments = append(s.payments, payment)
	return nil
}

func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	defer s.lock(ctx)()
	return slices.Clone(s.payments), nil
}
