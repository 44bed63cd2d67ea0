package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	repo *MockMovementRepository
	now  time.Time
	ctx  context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.repo = new(MockMovementRepository)
	s.now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.ctx = context.Background()
}

func (s *LedgerServiceTestSuite) newLedger() portssvc.LedgerSvc {
	return services.NewLedgerService(s.repo, services.WithLedgerClock(func() time.Time { return s.now }))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestRecordPurchase_OneMovementPerLine() {
	itemA, itemB := uuid.NewString(), uuid.NewString()
	billDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		VendorID:   uuid.NewString(),
		BillDate:   &billDate,
		Items: []domain.PurchaseLine{
			{ItemID: itemA, Qty: decimal.NewFromInt(5), Cost: decimal.NewFromInt(2)},
			{ItemID: itemB, Qty: decimal.RequireFromString("1.5"), Cost: decimal.NewFromInt(4)},
		},
	}

	s.repo.On("SaveMovements", s.ctx, mock.AnythingOfType("[]domain.StockMovement")).Return(nil).Once()

	movements, err := s.newLedger().RecordPurchase(s.ctx, purchase)
	s.Require().NoError(err)
	s.Require().Len(movements, 2)

	for i, m := range movements {
		s.Equal(purchase.Items[i].ItemID, m.ItemID)
		s.True(purchase.Items[i].Qty.Equal(m.Qty))
		s.Equal(domain.MovementIn, m.Type)
		s.Equal(domain.ReasonPurchase, m.Reason)
		s.Equal(domain.RefPurchase, m.RefType)
		s.Equal(purchase.PurchaseID, m.RefID)
		s.Equal(i, m.Seq)
		// Capture time, not the bill date.
		s.True(s.now.Equal(m.Date))
	}

	saved := s.repo.Calls[0].Arguments.Get(1).([]domain.StockMovement)
	s.Equal(movements, saved)
	s.repo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordSale_OutMovements() {
	sale := domain.Sale{
		SaleID: uuid.NewString(),
		Items:  []domain.SaleLine{{ItemID: uuid.NewString(), Qty: decimal.NewFromInt(3), Price: decimal.NewFromInt(9)}},
	}
	s.repo.On("SaveMovements", s.ctx, mock.Anything).Return(nil).Once()

	movements, err := s.newLedger().RecordSale(s.ctx, sale)
	s.Require().NoError(err)
	s.Require().Len(movements, 1)
	s.Equal(domain.MovementOut, movements[0].Type)
	s.Equal(domain.ReasonSale, movements[0].Reason)
	s.Equal(domain.RefSale, movements[0].RefType)
	s.Equal(sale.SaleID, movements[0].RefID)
}

func (s *LedgerServiceTestSuite) TestRecordPurchase_NoLinesWritesNothing() {
	purchase := domain.Purchase{PurchaseID: uuid.NewString(), VendorID: uuid.NewString()}

	movements, err := s.newLedger().RecordPurchase(s.ctx, purchase)
	s.Require().NoError(err)
	s.Empty(movements)
	s.repo.AssertNotCalled(s.T(), "SaveMovements", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordPurchase_PropagatesStoreError() {
	storeErr := errors.New("disk full")
	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		Items:      []domain.PurchaseLine{{ItemID: uuid.NewString(), Qty: decimal.NewFromInt(1)}},
	}
	s.repo.On("SaveMovements", s.ctx, mock.Anything).Return(storeErr).Once()

	movements, err := s.newLedger().RecordPurchase(s.ctx, purchase)
	s.Nil(movements)
	s.ErrorIs(err, storeErr)
}

func (s *LedgerServiceTestSuite) TestRecordPurchase_NoDedup() {
	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		Items:      []domain.PurchaseLine{{ItemID: uuid.NewString(), Qty: decimal.NewFromInt(1)}},
	}
	s.repo.On("SaveMovements", s.ctx, mock.Anything).Return(nil).Twice()

	ledger := s.newLedger()
	first, err := ledger.RecordPurchase(s.ctx, purchase)
	s.Require().NoError(err)
	second, err := ledger.RecordPurchase(s.ctx, purchase)
	s.Require().NoError(err)

	s.NotEqual(first[0].MovementID, second[0].MovementID)
	s.repo.AssertNumberOfCalls(s.T(), "SaveMovements", 2)
}
