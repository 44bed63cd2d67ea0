package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine is one item row on a customer invoice.
type SaleLine struct {
	ItemID   string          `json:"item_id"`
	Qty      decimal.Decimal `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// Total is qty*price less the flat discount, plus tax.
func (l SaleLine) Total() decimal.Decimal {
	return lineTotal(l.Qty, l.Price, l.Discount, l.TaxRate)
}

func (l SaleLine) Validate() error {
	if _, err := ValidateID("item_id", l.ItemID); err != nil {
		return err
	}
	if err := requirePositive("qty", l.Qty); err != nil {
		return err
	}
	if err := requireNonNegative("price", l.Price); err != nil {
		return err
	}
	if err := requireNonNegative("discount", l.Discount); err != nil {
		return err
	}
	return requirePercentage("tax_rate", l.TaxRate)
}

// Sale is an immutable customer invoice. CustomerID is empty for walk-in sales.
type Sale struct {
	SaleID        string          `json:"id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time      `json:"invoice_date,omitempty"`
	Items         []SaleLine      `json:"items"`
	OtherCharges  decimal.Decimal `json:"other_charges"`
	Notes         string          `json:"notes,omitempty"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	AuditFields
}

func (s Sale) Total() decimal.Decimal {
	total := s.OtherCharges
	for _, l := range s.Items {
		total = total.Add(l.Total())
	}
	return total
}

// Validate checks the header and every line.
func (s Sale) Validate() error {
	if s.CustomerID != "" {
		if _, err := ValidateID("customer_id", s.CustomerID); err != nil {
			return err
		}
	}
	if !s.PaymentStatus.Valid() {
		return validationErr("payment_status %q must be one of unpaid, partial, paid", s.PaymentStatus)
	}
	if err := requireNonNegative("other_charges", s.OtherCharges); err != nil {
		return err
	}
	for i, l := range s.Items {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}
