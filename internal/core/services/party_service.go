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

type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates the vendor/customer service.
func NewPartyService(partyRepo portsrepo.PartyRepository) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateVendor(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	return s.create(ctx, domain.PartyVendor, req)
}

func (s *partyService) ListVendors(ctx context.Context) ([]domain.Party, error) {
	return s.list(ctx, domain.PartyVendor)
}

func (s *partyService) CreateCustomer(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	return s.create(ctx, domain.PartyCustomer, req)
}

func (s *partyService) ListCustomers(ctx context.Context) ([]domain.Party, error) {
	return s.list(ctx, domain.PartyCustomer)
}

func (s *partyService) create(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest) (*domain.Party, error) {
	party := req.ToParty(kind, uuid.NewString(), s.Now())
	if err := party.Validate(); err != nil {
		return nil, err
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("kind", string(kind)), slog.String("party_id", party.PartyID))
		return nil, fmt.Errorf("failed to save %s: %w", kind, err)
	}

	s.LogInfo(ctx, "Party created", slog.String("kind", string(kind)), slog.String("party_id", party.PartyID))
	return &party, nil
}

func (s *partyService) list(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}
