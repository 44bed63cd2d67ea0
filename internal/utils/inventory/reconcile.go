package inventory

import (
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OnHandPlaces is the number of decimal places reported for on-hand quantities.
const OnHandPlaces = 2

// ComputeStockReport rebuilds on-hand quantity per item from opening stock and
// the full movement history. It is a pure function of its inputs.
//
// Movements of an unknown type are ignored. Movements for item ids outside
// the item set are accumulated in Orphans and left out of Levels. Levels
// follow the order of items.
func ComputeStockReport(items []domain.Item, movements []domain.StockMovement) domain.StockReport {
	onHand := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		onHand[it.ItemID] = it.OpeningStock
	}

	orphans := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if m.ItemID == "" {
			continue
		}
		var delta decimal.Decimal
		switch m.Type {
		case domain.MovementIn:
			delta = m.Qty
		case domain.MovementOut:
			delta = m.Qty.Neg()
		default:
			continue
		}

		if current, ok := onHand[m.ItemID]; ok {
			onHand[m.ItemID] = current.Add(delta)
		} else {
			orphans[m.ItemID] = orphans[m.ItemID].Add(delta)
		}
	}

	levels := make([]domain.StockLevel, 0, len(items))
	for _, it := range items {
		unit := it.Unit
		if unit == "" {
			unit = domain.DefaultUnit
		}
		levels = append(levels, domain.StockLevel{
			ItemID: it.ItemID,
			Name:   it.Name,
			SKU:    it.SKU,
			OnHand: onHand[it.ItemID].Round(OnHandPlaces),
			Unit:   unit,
		})
	}

	return domain.StockReport{Levels: levels, Orphans: orphans}
}
