package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// MovementReason records why stock moved.
type MovementReason string

const (
	ReasonPurchase MovementReason = "purchase"
	ReasonSale     MovementReason = "sale"
	ReasonOpening  MovementReason = "opening"
	ReasonAdjust   MovementReason = "adjust"
	ReasonReturn   MovementReason = "return"
)

func (r MovementReason) Valid() bool {
	switch r {
	case ReasonPurchase, ReasonSale, ReasonOpening, ReasonAdjust, ReasonReturn:
		return true
	}
	return false
}

// StockMovement is an append-only ledger entry. RefType/RefID point back to
// the originating transaction without owning it. Seq is the index of the
// originating line so that audit listings keep line order.
type StockMovement struct {
	MovementID string          `json:"id"`
	ItemID     string          `json:"item_id"`
	Type       MovementType    `json:"type"`
	Qty        decimal.Decimal `json:"qty"`
	Reason     MovementReason  `json:"reason"`
	RefType    RefType         `json:"ref_type,omitempty"`
	RefID      string          `json:"ref_id,omitempty"`
	Date       time.Time       `json:"date"`
	Seq        int             `json:"seq"`
}

// Validate checks a movement before it is appended.
func (m StockMovement) Validate() error {
	if m.ItemID == "" {
		return validationErr("item_id is required")
	}
	if m.Type != MovementIn && m.Type != MovementOut {
		return validationErr("type %q must be in or out", m.Type)
	}
	if !m.Reason.Valid() {
		return validationErr("reason %q is not a known movement reason", m.Reason)
	}
	return requirePositive("qty", m.Qty)
}

// StockLevel is one row of the stock report.
type StockLevel struct {
	ItemID string          `json:"item_id"`
	Name   string          `json:"name"`
	SKU    string          `json:"sku"`
	OnHand decimal.Decimal `json:"on_hand"`
	Unit   string          `json:"unit"`
}

// StockReport is the reconciled on-hand view. Orphans holds the net movement
// quantity for item ids that are not part of the item set; they are not
// represented in Levels.
type StockReport struct {
	Levels  []StockLevel
	Orphans map[string]decimal.Decimal
}
