package services

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
)

// PurchaseSvcFacade records vendor bills.
type PurchaseSvcFacade interface {
	// CreatePurchase stores the purchase and its stock-in movements atomically.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// SaleSvcFacade records customer invoices.
type SaleSvcFacade interface {
	// CreateSale stores the sale and its stock-out movements atomically.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// PaymentSvcFacade records payments against purchases and sales.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}
