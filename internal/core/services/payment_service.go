package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/google/uuid"
)

// paymentService stores payments as-is. The referenced transaction's
// payment_status is left untouched.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
}

func NewPaymentService(paymentRepo portsrepo.PaymentRepository) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	payment := req.ToPayment(uuid.NewString(), s.Now())
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("ref_type", string(payment.RefType)),
		slog.String("ref_id", payment.RefID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}
