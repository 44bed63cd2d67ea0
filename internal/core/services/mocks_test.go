package services_test

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

var _ portsrepo.ItemRepositoryFacade = (*MockItemRepository)(nil)

func (m *MockItemRepository) FindItemBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- Mock StockMovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.StockMovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) ListMovements(ctx context.Context) ([]domain.StockMovement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsPage(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	args := m.Called(ctx, itemID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.StockMovement), returnedNextToken, args.Error(2)
}

func (m *MockMovementRepository) SaveMovements(ctx context.Context, movements []domain.StockMovement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

// --- Mock LedgerSvc ---
type MockLedger struct {
	mock.Mock
}

var _ portssvc.LedgerSvc = (*MockLedger)(nil)

func (m *MockLedger) RecordPurchase(ctx context.Context, purchase domain.Purchase) ([]domain.StockMovement, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockLedger) RecordSale(ctx context.Context, sale domain.Sale) ([]domain.StockMovement, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

// --- Mock HealthRepository ---
type MockHealthRepository struct {
	mock.Mock
}

var _ portsrepo.HealthRepository = (*MockHealthRepository)(nil)

func (m *MockHealthRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockHealthRepository) ListCollections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
