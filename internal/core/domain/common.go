package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
// Records in this system are never updated, so only creation is tracked.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
}

// Collection names, in the order they are reported by the schema endpoint.
const (
	CollectionItem          = "item"
	CollectionVendor        = "vendor"
	CollectionCustomer      = "customer"
	CollectionPurchase      = "purchase"
	CollectionSale          = "sale"
	CollectionPayment       = "payment"
	CollectionStockMovement = "stockmovement"
)

// Collections lists every entity collection the store knows about.
func Collections() []string {
	return []string{
		CollectionItem,
		CollectionVendor,
		CollectionCustomer,
		CollectionPurchase,
		CollectionSale,
		CollectionPayment,
		CollectionStockMovement,
	}
}

var hundred = decimal.NewFromInt(100)

// ValidateID checks that id is a well-formed identifier and returns it in
// canonical lowercase dashed form. uuid.Parse also accepts uppercase,
// undashed, braced and urn:uuid: spellings; stored ids are always canonical.
func ValidateID(field, id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %s %q", apperrors.ErrInvalidIdentifier, field, id)
	}
	return u.String(), nil
}

// CanonicalID returns id in canonical form, or id unchanged when it does not
// parse so that Validate can still reject it.
func CanonicalID(id string) string {
	u, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return u.String()
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{apperrors.ErrValidation}, args...)...)
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return validationErr("%s must be greater than 0", field)
	}
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return validationErr("%s must not be negative", field)
	}
	return nil
}

func requirePercentage(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return validationErr("%s must be between 0 and 100", field)
	}
	return nil
}

// lineTotal computes qty*unit - discount, with tax applied on top.
func lineTotal(qty, unit, discount, taxRate decimal.Decimal) decimal.Decimal {
	net := qty.Mul(unit).Sub(discount)
	return net.Add(net.Mul(taxRate).Div(hundred))
}
