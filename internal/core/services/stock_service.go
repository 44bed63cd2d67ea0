package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/export"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/inventory"
)

// maxMovementPageSize caps ListMovements regardless of the requested limit.
const maxMovementPageSize = 200

// stockService is the Stock Reconciler. Levels are recomputed from a full
// scan on every call; nothing is cached.
type stockService struct {
	BaseService
	itemRepo     portsrepo.ItemReader
	movementRepo portsrepo.StockMovementReader
}

func NewStockService(itemRepo portsrepo.ItemReader, movementRepo portsrepo.StockMovementReader) portssvc.StockSvcFacade {
	return &stockService{itemRepo: itemRepo, movementRepo: movementRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) StockReport(ctx context.Context) (*domain.StockReport, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load items for stock report")
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	movements, err := s.movementRepo.ListMovements(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load movements for stock report")
		return nil, fmt.Errorf("failed to load stock movements: %w", err)
	}

	report := inventory.ComputeStockReport(items, movements)
	for itemID, qty := range report.Orphans {
		s.LogWarn(ctx, "Stock movements reference an unknown item",
			slog.String("item_id", itemID), slog.String("net_qty", qty.String()))
	}

	s.LogDebug(ctx, "Stock report computed",
		slog.Int("items", len(items)), slog.Int("movements", len(movements)), slog.Int("orphans", len(report.Orphans)))
	return &report, nil
}

func (s *stockService) ListMovements(ctx context.Context, params dto.ListMovementsParams) ([]domain.StockMovement, *string, error) {
	if params.ItemID != "" {
		itemID, err := domain.ValidateID("item_id", params.ItemID)
		if err != nil {
			return nil, nil, err
		}
		params.ItemID = itemID
	}

	limit := params.Limit
	if limit <= 0 {
		limit = dto.DefaultMovementPageSize
	}
	if limit > maxMovementPageSize {
		limit = maxMovementPageSize
	}

	movements, next, err := s.movementRepo.ListMovementsPage(ctx, params.ItemID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements", slog.String("item_id", params.ItemID), slog.Int("limit", limit))
		return nil, nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	if movements == nil {
		movements = []domain.StockMovement{}
	}
	return movements, next, nil
}

func (s *stockService) ExportStockReport(ctx context.Context, w io.Writer) error {
	report, err := s.StockReport(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteStockReport(w, report.Levels); err != nil {
		s.LogError(ctx, err, "Failed to render stock workbook")
		return err
	}
	return nil
}
