package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/google/uuid"
)

type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates the item catalog service.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	item := req.ToItem(uuid.NewString(), s.Now())
	if err := item.Validate(); err != nil {
		s.LogDebug(ctx, "Item failed validation", slog.String("sku", item.SKU), slog.String("error", err.Error()))
		return nil, err
	}

	existing, err := s.itemRepo.FindItemBySKU(ctx, item.SKU)
	switch {
	case err == nil && existing != nil:
		s.LogInfo(ctx, "Rejected item with duplicate SKU", slog.String("sku", item.SKU), slog.String("existing_item_id", existing.ItemID))
		return nil, fmt.Errorf("%w: SKU already exists", apperrors.ErrDuplicate)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up item by SKU", slog.String("sku", item.SKU))
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: SKU already exists", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID), slog.String("sku", item.SKU))
	return &item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if items == nil {
		return []domain.Item{}, nil
	}
	return items, nil
}
