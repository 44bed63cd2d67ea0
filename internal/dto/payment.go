package dto

import (
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the body of POST /payments.
type CreatePaymentRequest struct {
	RefType string          `json:"ref_type" binding:"required,oneof=purchase sale"`
	RefID   string          `json:"ref_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"gt=0"`
	Method  string          `json:"method"`
	Date    *time.Time      `json:"date"`
	Notes   string          `json:"notes"`
}

// ToPayment builds the domain payment. Date defaults to now, method to cash.
func (r CreatePaymentRequest) ToPayment(id string, now time.Time) domain.Payment {
	method := r.Method
	if method == "" {
		method = domain.DefaultPaymentMethod
	}
	date := now
	if r.Date != nil {
		date = r.Date.UTC()
	}
	return domain.Payment{
		PaymentID:   id,
		RefType:     domain.RefType(r.RefType),
		RefID:       domain.CanonicalID(r.RefID),
		Amount:      r.Amount,
		Method:      method,
		Date:        date,
		Notes:       r.Notes,
		AuditFields: domain.AuditFields{CreatedAt: now},
	}
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID        string          `json:"id"`
	RefType   domain.RefType  `json:"ref_type"`
	RefID     string          `json:"ref_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = PaymentResponse{
			ID:        p.PaymentID,
			RefType:   p.RefType,
			RefID:     p.RefID,
			Amount:    p.Amount,
			Method:    p.Method,
			Date:      p.Date,
			Notes:     p.Notes,
			CreatedAt: p.CreatedAt,
		}
	}
	return res
}
