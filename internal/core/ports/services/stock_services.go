package services

import (
	"context"
	"io"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
)

// LedgerSvc turns committed purchases and sales into stock movements.
type LedgerSvc interface {
	// RecordPurchase appends one "in" movement per purchase line, in line order.
	RecordPurchase(ctx context.Context, purchase domain.Purchase) ([]domain.StockMovement, error)

	// RecordSale appends one "out" movement per sale line, in line order.
	RecordSale(ctx context.Context, sale domain.Sale) ([]domain.StockMovement, error)
}

// StockReaderSvc derives on-hand quantities from the movement ledger
type StockReaderSvc interface {
	// StockReport recomputes on-hand for every item from a full scan.
	StockReport(ctx context.Context) (*domain.StockReport, error)

	// ListMovements returns one page of the ledger and the next page token.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) ([]domain.StockMovement, *string, error)
}

// StockExporterSvc renders the stock report for download
type StockExporterSvc interface {
	ExportStockReport(ctx context.Context, w io.Writer) error
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockExporterSvc
}

// HealthSvc reports backend and store status.
type HealthSvc interface {
	// Check never fails; store problems are reported in the Database field.
	Check(ctx context.Context) dto.HealthResponse

	// Collections lists the logical collection names.
	Collections() []string
}
