package dto

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleLineRequest is one line of a CreateSaleRequest.
type SaleLineRequest struct {
	ItemID   string           `json:"item_id" binding:"required"`
	Qty      decimal.Decimal  `json:"qty" binding:"gt=0"`
	Price    *decimal.Decimal `json:"price" binding:"required,gte=0"`
	Discount decimal.Decimal  `json:"discount" binding:"gte=0"`
	TaxRate  decimal.Decimal  `json:"tax_rate" binding:"gte=0,lte=100"`
}

// CreateSaleRequest is the body of POST /sales. CustomerID is optional.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"`
	InvoiceNumber string            `json:"invoice_number"`
	InvoiceDate   *time.Time        `json:"invoice_date"`
	Items         []SaleLineRequest `json:"items" binding:"required,dive"`
	OtherCharges  decimal.Decimal   `json:"other_charges" binding:"gte=0"`
	Notes         string            `json:"notes"`
	PaymentStatus string            `json:"payment_status" binding:"omitempty,oneof=unpaid partial paid"`
}

func (r CreateSaleRequest) ToSale(id string, now time.Time) domain.Sale {
	lines := make([]domain.SaleLine, len(r.Items))
	for i, l := range r.Items {
		var price decimal.Decimal
		if l.Price != nil {
			price = *l.Price
		}
		lines[i] = domain.SaleLine{
			ItemID:   domain.CanonicalID(l.ItemID),
			Qty:      l.Qty,
			Price:    price,
			Discount: l.Discount,
			TaxRate:  l.TaxRate,
		}
	}
	return domain.Sale{
		SaleID:        id,
		CustomerID:    domain.CanonicalID(r.CustomerID),
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   r.InvoiceDate,
		Items:         lines,
		OtherCharges:  r.OtherCharges,
		Notes:         r.Notes,
		PaymentStatus: paymentStatusOrDefault(r.PaymentStatus),
		AuditFields:   domain.AuditFields{CreatedAt: now},
	}
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id,omitempty"`
	InvoiceNumber string               `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time           `json:"invoice_date,omitempty"`
	Items         []domain.SaleLine    `json:"items"`
	OtherCharges  decimal.Decimal      `json:"other_charges"`
	Notes         string               `json:"notes,omitempty"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Total         decimal.Decimal      `json:"total"`
	CreatedAt     time.Time            `json:"created_at"`
}

func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items := s.Items
		if items == nil {
			items = []domain.SaleLine{}
		}
		res[i] = SaleResponse{
			ID:            s.SaleID,
			CustomerID:    s.CustomerID,
			InvoiceNumber: s.InvoiceNumber,
			InvoiceDate:   s.InvoiceDate,
			Items:         items,
			OtherCharges:  s.OtherCharges,
			Notes:         s.Notes,
			PaymentStatus: s.PaymentStatus,
			Total:         s.Total(),
			CreatedAt:     s.CreatedAt,
		}
	}
	return res
}
