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

type saleService struct {
	BaseService
	uow      portsrepo.UnitOfWork
	saleRepo portsrepo.SaleRepository
	ledger   portssvc.LedgerSvc
}

// NewSaleService creates the sale service. Stock is not checked: selling
// more than is on hand drives the level negative.
func NewSaleService(uow portsrepo.UnitOfWork, saleRepo portsrepo.SaleRepository, ledger portssvc.LedgerSvc) portssvc.SaleSvcFacade {
	return &saleService{uow: uow, saleRepo: saleRepo, ledger: ledger}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	sale := req.ToSale(uuid.NewString(), s.Now())
	if err := sale.Validate(); err != nil {
		s.LogDebug(ctx, "Sale failed validation", slog.String("error", err.Error()))
		return nil, err
	}

	var movements []domain.StockMovement
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.saleRepo.SaveSale(txCtx, sale); err != nil {
			return fmt.Errorf("failed to save sale: %w", err)
		}
		var err error
		movements, err = s.ledger.RecordSale(txCtx, sale)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Sale not recorded", slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("customer_id", sale.CustomerID),
		slog.Int("movements", len(movements)))
	return &sale, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}
