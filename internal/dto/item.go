package dto

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to create a catalog item.
type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	SKU          string          `json:"sku" binding:"required"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	TaxRate      decimal.Decimal `json:"tax_rate" binding:"gte=0,lte=100"`
	CostPrice    decimal.Decimal `json:"cost_price" binding:"gte=0"`
	SalePrice    decimal.Decimal `json:"sale_price" binding:"gte=0"`
	ReorderLevel int             `json:"reorder_level" binding:"gte=0"`
	OpeningStock decimal.Decimal `json:"opening_stock" binding:"gte=0"`
	Barcode      string          `json:"barcode"`
	IsActive     *bool           `json:"is_active"`
}

// ToItem builds the domain item, applying defaults.
func (r CreateItemRequest) ToItem(id string, now time.Time) domain.Item {
	unit := r.Unit
	if unit == "" {
		unit = domain.DefaultUnit
	}
	return domain.Item{
		ItemID:       id,
		Name:         r.Name,
		SKU:          r.SKU,
		Category:     r.Category,
		Unit:         unit,
		TaxRate:      r.TaxRate,
		CostPrice:    r.CostPrice,
		SalePrice:    r.SalePrice,
		ReorderLevel: r.ReorderLevel,
		OpeningStock: r.OpeningStock,
		Barcode:      r.Barcode,
		IsActive:     boolOrDefault(r.IsActive, true),
		AuditFields:  domain.AuditFields{CreatedAt: now},
	}
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category,omitempty"`
	Unit         string          `json:"unit"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderLevel int             `json:"reorder_level"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	Barcode      string          `json:"barcode,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO.
func ToItemResponse(i domain.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ItemID,
		Name:         i.Name,
		SKU:          i.SKU,
		Category:     i.Category,
		Unit:         i.Unit,
		TaxRate:      i.TaxRate,
		CostPrice:    i.CostPrice,
		SalePrice:    i.SalePrice,
		ReorderLevel: i.ReorderLevel,
		OpeningStock: i.OpeningStock,
		Barcode:      i.Barcode,
		IsActive:     i.IsActive,
		CreatedAt:    i.CreatedAt,
	}
}

// ToItemResponses converts a slice of items.
func ToItemResponses(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, it := range items {
		res[i] = ToItemResponse(it)
	}
	return res
}
