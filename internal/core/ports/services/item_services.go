package services

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
)

// ItemReaderSvc defines read operations for the item catalog
type ItemReaderSvc interface {
	// ListItems returns all items in creation order.
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for the item catalog
type ItemWriterSvc interface {
	// CreateItem persists a new item. A SKU already in use yields apperrors.ErrDuplicate.
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error)
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
