package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefType names the kind of transaction a payment or movement points back to.
type RefType string

const (
	RefPurchase RefType = "purchase"
	RefSale     RefType = "sale"
)

// DefaultPaymentMethod is used when a payment does not name one.
const DefaultPaymentMethod = "cash"

// Payment records money moving against a purchase or sale. It does not
// change the referenced transaction's PaymentStatus.
type Payment struct {
	PaymentID string          `json:"id"`
	RefType   RefType         `json:"ref_type"`
	RefID     string          `json:"ref_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	AuditFields
}

func (p Payment) Validate() error {
	if p.RefType != RefPurchase && p.RefType != RefSale {
		return validationErr("ref_type %q must be purchase or sale", p.RefType)
	}
	if _, err := ValidateID("ref_id", p.RefID); err != nil {
		return err
	}
	if p.Method == "" {
		return validationErr("method is required")
	}
	return requirePositive("amount", p.Amount)
}
