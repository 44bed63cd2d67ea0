package inventory

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/google/uuid"
)

// PurchaseMovements derives one "in" movement per purchase line, in line order.
// now is the capture time of recording, not the bill date.
func PurchaseMovements(p domain.Purchase, now time.Time) []domain.StockMovement {
	movements := make([]domain.StockMovement, 0, len(p.Items))
	for i, line := range p.Items {
		movements = append(movements, domain.StockMovement{
			MovementID: uuid.NewString(),
			ItemID:     line.ItemID,
			Type:       domain.MovementIn,
			Qty:        line.Qty,
			Reason:     domain.ReasonPurchase,
			RefType:    domain.RefPurchase,
			RefID:      p.PurchaseID,
			Date:       now.UTC(),
			Seq:        i,
		})
	}
	return movements
}

// SaleMovements derives one "out" movement per sale line, in line order.
func SaleMovements(s domain.Sale, now time.Time) []domain.StockMovement {
	movements := make([]domain.StockMovement, 0, len(s.Items))
	for i, line := range s.Items {
		movements = append(movements, domain.StockMovement{
			MovementID: uuid.NewString(),
			ItemID:     line.ItemID,
			Type:       domain.MovementOut,
			Qty:        line.Qty,
			Reason:     domain.ReasonSale,
			RefType:    domain.RefSale,
			RefID:      s.SaleID,
			Date:       now.UTC(),
			Seq:        i,
		})
	}
	return movements
}
