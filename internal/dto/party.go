package dto

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
)

// CreatePartyRequest is the body of POST /vendors and POST /customers.
type CreatePartyRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	GSTNumber string `json:"gst_number"`
	Notes     string `json:"notes"`
	IsActive  *bool  `json:"is_active"`
}

// ToParty builds the domain record for the given kind.
func (r CreatePartyRequest) ToParty(kind domain.PartyKind, id string, now time.Time) domain.Party {
	return domain.Party{
		PartyID:     id,
		Kind:        kind,
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		GSTNumber:   r.GSTNumber,
		Notes:       r.Notes,
		IsActive:    boolOrDefault(r.IsActive, true),
		AuditFields: domain.AuditFields{CreatedAt: now},
	}
}

// PartyResponse defines the data returned for a vendor or customer.
type PartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPartyResponses(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = PartyResponse{
			ID:        p.PartyID,
			Name:      p.Name,
			Phone:     p.Phone,
			Email:     p.Email,
			Address:   p.Address,
			GSTNumber: p.GSTNumber,
			Notes:     p.Notes,
			IsActive:  p.IsActive,
			CreatedAt: p.CreatedAt,
		}
	}
	return res
}
