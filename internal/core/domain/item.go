package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultUnit is the unit of measure used when none is given.
const DefaultUnit = "pcs"

// Item is a catalog entry. On-hand quantity is never stored on the item;
// it is always derived from OpeningStock and the movement ledger.
type Item struct {
	ItemID       string          `json:"id"`
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
	AuditFields
}

// Validate checks the item's field ranges.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return validationErr("name is required")
	}
	if strings.TrimSpace(i.SKU) == "" {
		return validationErr("sku is required")
	}
	if err := requirePercentage("tax_rate", i.TaxRate); err != nil {
		return err
	}
	if err := requireNonNegative("cost_price", i.CostPrice); err != nil {
		return err
	}
	if err := requireNonNegative("sale_price", i.SalePrice); err != nil {
		return err
	}
	if i.ReorderLevel < 0 {
		return validationErr("reorder_level must not be negative")
	}
	return requireNonNegative("opening_stock", i.OpeningStock)
}
