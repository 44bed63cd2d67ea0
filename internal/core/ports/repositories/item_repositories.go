package repositories

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
)

// ItemReader defines read operations for item data
type ItemReader interface {
	// FindItemBySKU returns apperrors.ErrNotFound when no item has the SKU.
	FindItemBySKU(ctx context.Context, sku string) (*domain.Item, error)

	// ListItems returns every item in creation order.
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// ItemWriter defines write operations for item data
type ItemWriter interface {
	// SaveItem persists a new item. A SKU collision yields apperrors.ErrDuplicate.
	SaveItem(ctx context.Context, item domain.Item) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
