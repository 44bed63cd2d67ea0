package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/inventory"
)

// ledgerService derives and appends stock movements for committed transactions.
// It does not deduplicate: recording the same purchase twice appends twice.
type ledgerService struct {
	BaseService
	movementRepo portsrepo.StockMovementWriter
}

// LedgerServiceOption configures a ledgerService.
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock fixes the capture time stamped on movements.
func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = clock
	}
}

// NewLedgerService creates the Ledger Engine over a movement writer.
func NewLedgerService(movementRepo portsrepo.StockMovementWriter, options ...LedgerServiceOption) portssvc.LedgerSvc {
	svc := &ledgerService{movementRepo: movementRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) RecordPurchase(ctx context.Context, purchase domain.Purchase) ([]domain.StockMovement, error) {
	movements := inventory.PurchaseMovements(purchase, s.Now())
	if err := s.append(ctx, movements, domain.RefPurchase, purchase.PurchaseID); err != nil {
		return nil, err
	}
	return movements, nil
}

func (s *ledgerService) RecordSale(ctx context.Context, sale domain.Sale) ([]domain.StockMovement, error) {
	movements := inventory.SaleMovements(sale, s.Now())
	if err := s.append(ctx, movements, domain.RefSale, sale.SaleID); err != nil {
		return nil, err
	}
	return movements, nil
}

func (s *ledgerService) append(ctx context.Context, movements []domain.StockMovement, refType domain.RefType, refID string) error {
	if len(movements) == 0 {
		s.LogDebug(ctx, "No lines, no stock movements recorded",
			slog.String("ref_type", string(refType)), slog.String("ref_id", refID))
		return nil
	}

	if err := s.movementRepo.SaveMovements(ctx, movements); err != nil {
		s.LogError(ctx, err, "Failed to record stock movements",
			slog.String("ref_type", string(refType)), slog.String("ref_id", refID), slog.Int("count", len(movements)))
		return fmt.Errorf("failed to record stock movements for %s %s: %w", refType, refID, err)
	}

	s.LogDebug(ctx, "Stock movements recorded",
		slog.String("ref_type", string(refType)), slog.String("ref_id", refID), slog.Int("count", len(movements)))
	return nil
}
