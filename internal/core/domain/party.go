package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PartyKind distinguishes vendors from customers; both share one shape.
type PartyKind string

const (
	PartyVendor   PartyKind = "vendor"
	PartyCustomer PartyKind = "customer"
)

// Party is a vendor or customer contact record.
type Party struct {
	PartyID   string    `json:"id"`
	Kind      PartyKind `json:"-"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	AuditFields
}

// Validate checks that the party has a name and a usable email, if any.
func (p Party) Validate() error {
	if p.Kind != PartyVendor && p.Kind != PartyCustomer {
		return validationErr("unknown party kind %q", p.Kind)
	}
	if strings.TrimSpace(p.Name) == "" {
		return validationErr("name is required")
	}
	if p.Email != "" {
		if err := validate.Var(p.Email, "email"); err != nil {
			return validationErr("email %q is not valid", p.Email)
		}
	}
	return nil
}
