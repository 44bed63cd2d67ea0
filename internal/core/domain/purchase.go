package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLine is one item row on a vendor bill. Lines are owned by their Purchase.
type PurchaseLine struct {
	ItemID   string          `json:"item_id"`
	Qty      decimal.Decimal `json:"qty"`
	Cost     decimal.Decimal `json:"cost"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Discount decimal.Decimal `json:"discount"`
}

// Total is qty*cost less the flat discount, plus tax.
func (l PurchaseLine) Total() decimal.Decimal {
	return lineTotal(l.Qty, l.Cost, l.Discount, l.TaxRate)
}

// Validate checks a single purchase line.
func (l PurchaseLine) Validate() error {
	if _, err := ValidateID("item_id", l.ItemID); err != nil {
		return err
	}
	if err := requirePositive("qty", l.Qty); err != nil {
		return err
	}
	if err := requireNonNegative("cost", l.Cost); err != nil {
		return err
	}
	if err := requirePercentage("tax_rate", l.TaxRate); err != nil {
		return err
	}
	return requireNonNegative("discount", l.Discount)
}

// Purchase is an immutable vendor bill.
type Purchase struct {
	PurchaseID    string          `json:"id"`
	VendorID      string          `json:"vendor_id"`
	BillNumber    string          `json:"bill_number,omitempty"`
	BillDate      *time.Time      `json:"bill_date,omitempty"`
	Items         []PurchaseLine  `json:"items"`
	OtherCharges  decimal.Decimal `json:"other_charges"`
	Notes         string          `json:"notes,omitempty"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	AuditFields
}

// Total sums line totals and other charges.
func (p Purchase) Total() decimal.Decimal {
	total := p.OtherCharges
	for _, l := range p.Items {
		total = total.Add(l.Total())
	}
	return total
}

// Validate checks the header and every line. A purchase with no lines is valid.
func (p Purchase) Validate() error {
	if _, err := ValidateID("vendor_id", p.VendorID); err != nil {
		return err
	}
	if !p.PaymentStatus.Valid() {
		return validationErr("payment_status %q must be one of unpaid, partial, paid", p.PaymentStatus)
	}
	if err := requireNonNegative("other_charges", p.OtherCharges); err != nil {
		return err
	}
	for i, l := range p.Items {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}
