// Package memory is an in-process document store. It backs tests and
// STORE_DRIVER=memory; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
)

type txKey struct{}

// Store holds every collection behind one mutex. Collections are
// append-only, so a unit of work is rolled back by truncating each slice
// to its length at the start of the unit.
type Store struct {
	mu        sync.Mutex
	items     []domain.Item
	vendors   []domain.Party
	customers []domain.Party
	purchases []domain.Purchase
	sales     []domain.Sale
	payments  []domain.Payment
	movements []domain.StockMovement
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewRepositoryProvider exposes one Store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork:   s,
		ItemRepo:     s,
		PartyRepo:    s,
		PurchaseRepo: s,
		SaleRepo:     s,
		PaymentRepo:  s,
		MovementRepo: s,
		HealthRepo:   s,
	}
}

var (
	_ portsrepo.UnitOfWork                    = (*Store)(nil)
	_ portsrepo.ItemRepositoryFacade          = (*Store)(nil)
	_ portsrepo.PartyRepository               = (*Store)(nil)
	_ portsrepo.PurchaseRepository            = (*Store)(nil)
	_ portsrepo.SaleRepository                = (*Store)(nil)
	_ portsrepo.PaymentRepository             = (*Store)(nil)
	_ portsrepo.StockMovementRepositoryFacade = (*Store)(nil)
	_ portsrepo.HealthRepository              = (*Store)(nil)
)

type snapshot struct {
	items, vendors, customers, purchases, sales, payments, movements int
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		items:     len(s.items),
		vendors:   len(s.vendors),
		customers: len(s.customers),
		purchases: len(s.purchases),
		sales:     len(s.sales),
		payments:  len(s.payments),
		movements: len(s.movements),
	}
}

func (s *Store) restore(snap snapshot) {
	s.items = s.items[:snap.items]
	s.vendors = s.vendors[:snap.vendors]
	s.customers = s.customers[:snap.customers]
	s.purchases = s.purchases[:snap.purchases]
	s.sales = s.sales[:snap.sales]
	s.payments = s.payments[:snap.payments]
	s.movements = s.movements[:snap.movements]
}

// WithinTx holds the store lock for the whole of fn. Repository calls made
// with the ctx handed to fn do not lock again. Nested calls join the outer unit.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock acquires the mutex unless ctx is already inside this store's unit of
// work, and returns the matching release.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) ListCollections(_ context.Context) ([]string, error) {
	names := domain.Collections()
	sort.Strings(names)
	return names, nil
}
