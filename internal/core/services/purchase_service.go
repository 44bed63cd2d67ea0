package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/google/uuid"
)

type purchaseService struct {
	BaseService
	uow          portsrepo.UnitOfWork
	purchaseRepo portsrepo.PurchaseRepository
	ledger       portssvc.LedgerSvc
}

// NewPurchaseService creates the purchase service. Purchases and their
// movements are written through uow as one unit.
func NewPurchaseService(uow portsrepo.UnitOfWork, purchaseRepo portsrepo.PurchaseRepository, ledger portssvc.LedgerSvc) portssvc.PurchaseSvcFacade {
	return &purchaseService{uow: uow, purchaseRepo: purchaseRepo, ledger: ledger}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	purchase := req.ToPurchase(uuid.NewString(), s.Now())
	if err := purchase.Validate(); err != nil {
		s.LogDebug(ctx, "Purchase failed validation", slog.String("error", err.Error()))
		return nil, err
	}

	var movements []domain.StockMovement
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.purchaseRepo.SavePurchase(txCtx, purchase); err != nil {
			return fmt.Errorf("failed to save purchase: %w", err)
		}
		var err error
		movements, err = s.ledger.RecordPurchase(txCtx, purchase)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Purchase not recorded", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("vendor_id", purchase.VendorID),
		slog.Int("movements", len(movements)))
	return &purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}
