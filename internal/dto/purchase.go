package dto

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseLineRequest is one line of a CreatePurchaseRequest.
type PurchaseLineRequest struct {
	ItemID   string           `json:"item_id" binding:"required"`
	Qty      decimal.Decimal  `json:"qty" binding:"gt=0"`
	Cost     *decimal.Decimal `json:"cost" binding:"required,gte=0"`
	TaxRate  decimal.Decimal  `json:"tax_rate" binding:"gte=0,lte=100"`
	Discount decimal.Decimal  `json:"discount" binding:"gte=0"`
}

// CreatePurchaseRequest is the body of POST /purchases.
type CreatePurchaseRequest struct {
	VendorID      string                `json:"vendor_id" binding:"required"`
	BillNumber    string                `json:"bill_number"`
	BillDate      *time.Time            `json:"bill_date"`
	Items         []PurchaseLineRequest `json:"items" binding:"required,dive"`
	OtherCharges  decimal.Decimal       `json:"other_charges" binding:"gte=0"`
	Notes         string                `json:"notes"`
	PaymentStatus string                `json:"payment_status" binding:"omitempty,oneof=unpaid partial paid"`
}

// ToPurchase builds the domain purchase. Lines keep request order.
func (r CreatePurchaseRequest) ToPurchase(id string, now time.Time) domain.Purchase {
	lines := make([]domain.PurchaseLine, len(r.Items))
	for i, l := range r.Items {
		var cost decimal.Decimal
		if l.Cost != nil {
			cost = *l.Cost
		}
		lines[i] = domain.PurchaseLine{
			ItemID:   domain.CanonicalID(l.ItemID),
			Qty:      l.Qty,
			Cost:     cost,
			TaxRate:  l.TaxRate,
			Discount: l.Discount,
		}
	}
	return domain.Purchase{
		PurchaseID:    id,
		VendorID:      domain.CanonicalID(r.VendorID),
		BillNumber:    r.BillNumber,
		BillDate:      r.BillDate,
		Items:         lines,
		OtherCharges:  r.OtherCharges,
		Notes:         r.Notes,
		PaymentStatus: paymentStatusOrDefault(r.PaymentStatus),
		AuditFields:   domain.AuditFields{CreatedAt: now},
	}
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	ID            string                `json:"id"`
	VendorID      string                `json:"vendor_id"`
	BillNumber    string                `json:"bill_number,omitempty"`
	BillDate      *time.Time            `json:"bill_date,omitempty"`
	Items         []domain.PurchaseLine `json:"items"`
	OtherCharges  decimal.Decimal       `json:"other_charges"`
	Notes         string                `json:"notes,omitempty"`
	PaymentStatus domain.PaymentStatus  `json:"payment_status"`
	Total         decimal.Decimal       `json:"total"`
	CreatedAt     time.Time             `json:"created_at"`
}

func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		items := p.Items
		if items == nil {
			items = []domain.PurchaseLine{}
		}
		res[i] = PurchaseResponse{
			ID:            p.PurchaseID,
			VendorID:      p.VendorID,
			BillNumber:    p.BillNumber,
			BillDate:      p.BillDate,
			Items:         items,
			OtherCharges:  p.OtherCharges,
			Notes:         p.Notes,
			PaymentStatus: p.PaymentStatus,
			Total:         p.Total(),
			CreatedAt:     p.CreatedAt,
		}
	}
	return res
}

func paymentStatusOrDefault(s string) domain.PaymentStatus {
	if s == "" {
		return domain.PaymentUnpaid
	}
	return domain.PaymentStatus(s)
}
