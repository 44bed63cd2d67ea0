package services_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/core/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// InventoryFlowTestSuite drives the services over the in-memory store.
type InventoryFlowTestSuite struct {
	suite.Suite
	store     *memory.Store
	container *portssvc.ServiceContainer
	ctx       context.Context
}

func (s *InventoryFlowTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.container = services.NewServiceContainer(memory.NewRepositoryProvider(s.store))
	s.ctx = context.Background()
}

func TestInventoryFlowTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryFlowTestSuite))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func (s *InventoryFlowTestSuite) createItem(sku, opening string) *domain.Item {
	item, err := s.container.Item.CreateItem(s.ctx, dto.CreateItemRequest{Name: "Item " + sku, SKU: sku, OpeningStock: dec(opening)})
	s.Require().NoError(err)
	return item
}

func (s *InventoryFlowTestSuite) purchase(itemID, qty string) (*domain.Purchase, error) {
	return s.container.Purchase.CreatePurchase(s.ctx, dto.CreatePurchaseRequest{
		VendorID: uuid.NewString(),
		Items:    []dto.PurchaseLineRequest{{ItemID: itemID, Qty: dec(qty), Cost: ptr(dec("2"))}},
	})
}

func (s *InventoryFlowTestSuite) sell(itemID, qty string) (*domain.Sale, error) {
	return s.container.Sale.CreateSale(s.ctx, dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ItemID: itemID, Qty: dec(qty), Price: ptr(dec("5"))}},
	})
}

func (s *InventoryFlowTestSuite) onHand(itemID string) decimal.Decimal {
	report, err := s.container.Stock.StockReport(s.ctx)
	s.Require().NoError(err)
	for _, l := range report.Levels {
		if l.ItemID == itemID {
			return l.OnHand
		}
	}
	s.FailNow("item missing from stock report", itemID)
	return decimal.Zero
}

func (s *InventoryFlowTestSuite) TestPurchaseThenSale() {
	item := s.createItem("NAIL-10", "10")

	_, err := s.purchase(item.ItemID, "5")
	s.Require().NoError(err)
	s.Equal("15", s.onHand(item.ItemID).String())

	_, err = s.sell(item.ItemID, "3")
	s.Require().NoError(err)
	s.Equal("12", s.onHand(item.ItemID).String())
}

func (s *InventoryFlowTestSuite) TestNonCanonicalItemIDsCountTowardStock() {
	item := s.createItem("BOLT-8", "10")

	purchase, err := s.purchase(strings.ToUpper(item.ItemID), "5")
	s.Require().NoError(err)
	s.Equal(item.ItemID, purchase.Items[0].ItemID)
	s.True(dec("15").Equal(s.onHand(item.ItemID)), s.onHand(item.ItemID).String())

	_, err = s.purchase(strings.ReplaceAll(item.ItemID, "-", ""), "5")
	s.Require().NoError(err)
	s.True(dec("20").Equal(s.onHand(item.ItemID)), s.onHand(item.ItemID).String())

	_, err = s.sell("{"+item.ItemID+"}", "4")
	s.Require().NoError(err)
	s.True(dec("16").Equal(s.onHand(item.ItemID)), s.onHand(item.ItemID).String())

	report, err := s.container.Stock.StockReport(s.ctx)
	s.Require().NoError(err)
	s.Empty(report.Orphans)

	movements, _, err := s.container.Stock.ListMovements(s.ctx, dto.ListMovementsParams{ItemID: strings.ToUpper(item.ItemID)})
	s.Require().NoError(err)
	s.Len(movements, 3)
}

func (s *InventoryFlowTestSuite) TestZeroLinePurchaseRecordsNoMovements() {
	purchase, err := s.container.Purchase.CreatePurchase(s.ctx, dto.CreatePurchaseRequest{
		VendorID: uuid.NewString(),
		Items:    []dto.PurchaseLineRequest{},
	})
	s.Require().NoError(err)
	s.NotEmpty(purchase.PurchaseID)

	movements, err := s.store.ListMovements(s.ctx)
	s.Require().NoError(err)
	s.Empty(movements)

	purchases, err := s.container.Purchase.ListPurchases(s.ctx)
	s.Require().NoError(err)
	s.Len(purchases, 1)
}

func (s *InventoryFlowTestSuite) TestOversellGoesNegative() {
	item := s.createItem("SAW-1", "0")

	_, err := s.sell(item.ItemID, "100")
	s.Require().NoError(err)
	s.Equal("-100", s.onHand(item.ItemID).String())
}

func (s *InventoryFlowTestSuite) TestOrphanMovementsExcludedFromLevels() {
	item := s.createItem("BOLT-1", "1")
	orphanID := uuid.NewString()

	_, err := s.purchase(orphanID, "7")
	s.Require().NoError(err)

	report, err := s.container.Stock.StockReport(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(report.Levels, 1)
	s.Equal(item.ItemID, report.Levels[0].ItemID)
	s.Equal("7", report.Orphans[orphanID].String())
}

func (s *InventoryFlowTestSuite) TestFractionalQuantitiesRounded() {
	item := s.createItem("WIRE-1", "0.005")

	_, err := s.purchase(item.ItemID, "1.111")
	s.Require().NoError(err)

	s.Equal("1.12", s.onHand(item.ItemID).String())
}

func (s *InventoryFlowTestSuite) TestLinesKeepOrder() {
	a := s.createItem("A", "0")
	b := s.createItem("B", "0")

	purchase, err := s.container.Purchase.CreatePurchase(s.ctx, dto.CreatePurchaseRequest{
		VendorID: uuid.NewString(),
		Items: []dto.PurchaseLineRequest{
			{ItemID: b.ItemID, Qty: dec("1"), Cost: ptr(dec("1"))},
			{ItemID: a.ItemID, Qty: dec("2"), Cost: ptr(dec("1"))},
		},
	})
	s.Require().NoError(err)

	movements, _, err := s.container.Stock.ListMovements(s.ctx, dto.ListMovementsParams{})
	s.Require().NoError(err)
	s.Require().Len(movements, 2)
	s.Equal(b.ItemID, movements[0].ItemID)
	s.Equal(a.ItemID, movements[1].ItemID)
	for _, m := range movements {
		s.Equal(purchase.PurchaseID, m.RefID)
	}
}

func (s *InventoryFlowTestSuite) TestDuplicateSKURejected() {
	s.createItem("DUP", "0")

	_, err := s.container.Item.CreateItem(s.ctx, dto.CreateItemRequest{Name: "Other", SKU: "DUP"})
	s.True(errors.Is(err, apperrors.ErrDuplicate))

	items, err := s.container.Item.ListItems(s.ctx)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *InventoryFlowTestSuite) TestMalformedItemIDPersistsNothing() {
	_, err := s.purchase("not-a-uuid", "1")
	s.True(errors.Is(err, apperrors.ErrInvalidIdentifier))

	purchases, _ := s.store.ListPurchases(s.ctx)
	movements, _ := s.store.ListMovements(s.ctx)
	s.Empty(purchases)
	s.Empty(movements)
}

func (s *InventoryFlowTestSuite) TestMalformedVendorID() {
	_, err := s.container.Purchase.CreatePurchase(s.ctx, dto.CreatePurchaseRequest{VendorID: "v-1"})
	s.True(errors.Is(err, apperrors.ErrInvalidIdentifier))
}

func (s *InventoryFlowTestSuite) TestLedgerFailureRollsBackPurchase() {
	ledger := new(MockLedger)
	ledgerErr := errors.New("ledger down")
	ledger.On("RecordPurchase", mock.Anything, mock.Anything).Return(nil, ledgerErr).Once()

	repos := memory.NewRepositoryProvider(s.store)
	svc := services.NewPurchaseService(repos.UnitOfWork, repos.PurchaseRepo, ledger)

	_, err := svc.CreatePurchase(s.ctx, dto.CreatePurchaseRequest{
		VendorID: uuid.NewString(),
		Items:    []dto.PurchaseLineRequest{{ItemID: uuid.NewString(), Qty: dec("1"), Cost: ptr(dec("1"))}},
	})
	s.ErrorIs(err, ledgerErr)

	purchases, _ := s.store.ListPurchases(s.ctx)
	s.Empty(purchases)
	ledger.AssertExpectations(s.T())
}

func (s *InventoryFlowTestSuite) TestSaleWithoutCustomer() {
	sale, err := s.sell(uuid.NewString(), "1")
	s.Require().NoError(err)
	s.Empty(sale.CustomerID)
	s.Equal(domain.PaymentUnpaid, sale.PaymentStatus)
}

func (s *InventoryFlowTestSuite) TestPaymentDefaultsAndStatusUntouched() {
	item := s.createItem("PAY-1", "0")
	purchase, err := s.purchase(item.ItemID, "1")
	s.Require().NoError(err)

	before := time.Now().UTC().Add(-time.Second)
	payment, err := s.container.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		RefType: "purchase",
		RefID:   purchase.PurchaseID,
		Amount:  dec("2"),
	})
	s.Require().NoError(err)
	s.Equal(domain.DefaultPaymentMethod, payment.Method)
	s.True(payment.Date.After(before))

	purchases, err := s.container.Purchase.ListPurchases(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.PaymentUnpaid, purchases[0].PaymentStatus)

	payments, err := s.container.Payment.ListPayments(s.ctx)
	s.Require().NoError(err)
	s.Len(payments, 1)
}

func (s *InventoryFlowTestSuite) TestPaymentRefStoredCanonical() {
	refID := uuid.NewString()
	payment, err := s.container.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{
		RefType: "sale",
		RefID:   strings.ToUpper(refID),
		Amount:  dec("1"),
	})
	s.Require().NoError(err)
	s.Equal(refID, payment.RefID)
}

func (s *InventoryFlowTestSuite) TestPaymentMalformedRef() {
	_, err := s.container.Payment.CreatePayment(s.ctx, dto.CreatePaymentRequest{RefType: "sale", RefID: "x", Amount: dec("1")})
	s.True(errors.Is(err, apperrors.ErrInvalidIdentifier))
}

func (s *InventoryFlowTestSuite) TestVendorsAndCustomersSeparate() {
	_, err := s.container.Party.CreateVendor(s.ctx, dto.CreatePartyRequest{Name: "Acme Supply"})
	s.Require().NoError(err)
	_, err = s.container.Party.CreateCustomer(s.ctx, dto.CreatePartyRequest{Name: "Walk-in", Email: "walk@in.example"})
	s.Require().NoError(err)

	vendors, err := s.container.Party.ListVendors(s.ctx)
	s.Require().NoError(err)
	customers, err := s.container.Party.ListCustomers(s.ctx)
	s.Require().NoError(err)
	s.Len(vendors, 1)
	s.Len(customers, 1)

	_, err = s.container.Party.CreateCustomer(s.ctx, dto.CreatePartyRequest{Name: "Bad", Email: "nope"})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *InventoryFlowTestSuite) TestExportStockReport() {
	s.createItem("X-1", "3")

	var buf bytes.Buffer
	s.Require().NoError(s.container.Stock.ExportStockReport(s.ctx, &buf))
	s.NotZero(buf.Len())
}
