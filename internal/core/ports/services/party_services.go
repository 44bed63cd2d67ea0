package services

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
)

// PartySvcFacade manages vendors and customers. Both are created unconditionally.
type PartySvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)
	ListVendors(ctx context.Context) ([]domain.Party, error)
	CreateCustomer(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)
	ListCustomers(ctx context.Context) ([]domain.Party, error)
}
