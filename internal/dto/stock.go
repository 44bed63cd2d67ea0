package dto

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockLevelResponse is one row of GET /stock.
type StockLevelResponse struct {
	ItemID string          `json:"item_id"`
	Name   string          `json:"name"`
	SKU    string          `json:"sku"`
	OnHand decimal.Decimal `json:"on_hand"`
	Unit   string          `json:"unit"`
}

// ToStockLevelResponses keeps report order.
func ToStockLevelResponses(levels []domain.StockLevel) []StockLevelResponse {
	res := make([]StockLevelResponse, len(levels))
	for i, l := range levels {
		res[i] = StockLevelResponse{ItemID: l.ItemID, Name: l.Name, SKU: l.SKU, OnHand: l.OnHand, Unit: l.Unit}
	}
	return res
}

// DefaultMovementPageSize is used when ListMovementsParams.Limit is zero.
const DefaultMovementPageSize = 50

// ListMovementsParams holds query parameters for GET /stock/movements.
type ListMovementsParams struct {
	ItemID    string  `form:"item_id"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"next_token"`
}

// MovementResponse defines the data returned for a stock movement.
type MovementResponse struct {
	ID      string          `json:"id"`
	ItemID  string          `json:"item_id"`
	Type    string          `json:"type"`
	Qty     decimal.Decimal `json:"qty"`
	Reason  string          `json:"reason"`
	RefType string          `json:"ref_type,omitempty"`
	RefID   string          `json:"ref_id,omitempty"`
	Date    time.Time       `json:"date"`
}

// ListMovementsResponse is one page of the movement ledger.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"next_token,omitempty"`
}

func ToMovementResponses(movements []domain.StockMovement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i, m := range movements {
		res[i] = MovementResponse{
			ID:      m.MovementID,
			ItemID:  m.ItemID,
			Type:    string(m.Type),
			Qty:     m.Qty,
			Reason:  string(m.Reason),
			RefType: string(m.RefType),
			RefID:   m.RefID,
			Date:    m.Date,
		}
	}
	return res
}
